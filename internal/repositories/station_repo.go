package repositories

import (
	"database/sql"
	"strconv"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain/models"
	"railway-backend/internal/utils"
)

type StationRepo struct {
	DB *sql.DB
}

func (r StationRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StationRepo) List() ([]models.Station, error) {
	rows, err := r.db().Query(
		`SELECT station_id, station_name, station_code, city, state FROM stations ORDER BY station_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Station{}
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.State); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StationRepo) GetByID(id int64) (models.Station, error) {
	var s models.Station
	err := r.db().QueryRow(
		`SELECT station_id, station_name, station_code, city, state FROM stations WHERE station_id=?`, id,
	).Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.State)
	return s, err
}

// NameByID resolves a display name, falling back to the id itself when the
// station row is missing. Lookups never fail the caller.
func (r StationRepo) NameByID(id int64) string {
	var name sql.NullString
	err := r.db().QueryRow(`SELECT station_name FROM stations WHERE station_id=?`, id).Scan(&name)
	if err != nil || !name.Valid {
		return strconv.FormatInt(id, 10)
	}
	return name.String
}

func (r StationRepo) CodeExists(code string) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM stations WHERE station_code=? LIMIT 1`, utils.NormalizeCode(code)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r StationRepo) Create(s models.Station) (int64, error) {
	res, err := r.db().Exec(
		`INSERT INTO stations (station_name, station_code, city, state) VALUES (?,?,?,?)`,
		s.Name, utils.NormalizeCode(s.Code), s.City, s.State,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r StationRepo) Update(s models.Station) error {
	res, err := r.db().Exec(
		`UPDATE stations SET station_name=?, station_code=?, city=?, state=? WHERE station_id=?`,
		s.Name, utils.NormalizeCode(s.Code), s.City, s.State, s.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r StationRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM stations WHERE station_id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
