package repositories

import (
	"database/sql"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain/models"
)

type FareRepo struct {
	DB *sql.DB
}

func (r FareRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Lookup returns the fare amount for a (from, to, class) triple. A missing
// rule is a valid state, reported via found=false, never as an error.
func (r FareRepo) Lookup(fromStation, toStation int64, classType string) (float64, bool, error) {
	var amount float64
	err := r.db().QueryRow(
		`SELECT fare_amount FROM fare_master WHERE from_station=? AND to_station=? AND class_type=?`,
		fromStation, toStation, classType,
	).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}

func (r FareRepo) Exists(fromStation, toStation int64, classType string) (bool, error) {
	_, found, err := r.Lookup(fromStation, toStation, classType)
	return found, err
}

func (r FareRepo) List() ([]models.FareRule, error) {
	rows, err := r.db().Query(
		`SELECT fare_id, from_station, to_station, class_type, fare_amount FROM fare_master ORDER BY fare_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FareRule{}
	for rows.Next() {
		var f models.FareRule
		if err := rows.Scan(&f.ID, &f.FromStation, &f.ToStation, &f.ClassType, &f.Amount); err != nil {
			return out, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FareRepo) Create(f models.FareRule) (int64, error) {
	res, err := r.db().Exec(
		`INSERT INTO fare_master (from_station, to_station, class_type, fare_amount) VALUES (?,?,?,?)`,
		f.FromStation, f.ToStation, f.ClassType, f.Amount,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FareRepo) Update(f models.FareRule) error {
	res, err := r.db().Exec(
		`UPDATE fare_master SET from_station=?, to_station=?, class_type=?, fare_amount=? WHERE fare_id=?`,
		f.FromStation, f.ToStation, f.ClassType, f.Amount, f.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r FareRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM fare_master WHERE fare_id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
