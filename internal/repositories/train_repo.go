package repositories

import (
	"database/sql"
	"fmt"
	"strconv"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain/models"
)

type TrainRepo struct {
	DB *sql.DB
}

func (r TrainRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TrainRepo) List() ([]models.Train, error) {
	rows, err := r.db().Query(`SELECT train_id, train_name, train_type, total_seats FROM trains ORDER BY train_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.TotalSeats); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TrainRepo) GetByID(id int64) (models.Train, error) {
	var t models.Train
	err := r.db().QueryRow(
		`SELECT train_id, train_name, train_type, total_seats FROM trains WHERE train_id=?`, id,
	).Scan(&t.ID, &t.Name, &t.Type, &t.TotalSeats)
	return t, err
}

// NameByID resolves a display name, falling back to the id itself when the
// train row is missing. Lookups never fail the caller.
func (r TrainRepo) NameByID(id int64) string {
	var name sql.NullString
	err := r.db().QueryRow(`SELECT train_name FROM trains WHERE train_id=?`, id).Scan(&name)
	if err != nil || !name.Valid {
		return strconv.FormatInt(id, 10)
	}
	return name.String
}

func (r TrainRepo) Create(t models.Train) (int64, error) {
	if t.TotalSeats <= 0 {
		return 0, fmt.Errorf("total_seats must be positive")
	}
	res, err := r.db().Exec(
		`INSERT INTO trains (train_name, train_type, total_seats) VALUES (?,?,?)`,
		t.Name, t.Type, t.TotalSeats,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TrainRepo) Update(t models.Train) error {
	if t.TotalSeats <= 0 {
		return fmt.Errorf("total_seats must be positive")
	}
	res, err := r.db().Exec(
		`UPDATE trains SET train_name=?, train_type=?, total_seats=? WHERE train_id=?`,
		t.Name, t.Type, t.TotalSeats, t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r TrainRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trains WHERE train_id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
