package repositories

import (
	"database/sql"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain/models"
)

type ScheduleRepo struct {
	DB *sql.DB
}

func (r ScheduleRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ScheduleRepo) List() ([]models.ScheduleStop, error) {
	rows, err := r.db().Query(`
		SELECT schedule_id, train_id, station_id, arrival_time, departure_time, sequence
		FROM train_schedule ORDER BY train_id, sequence`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ScheduleStop{}
	for rows.Next() {
		var s models.ScheduleStop
		var arr, dep sql.NullString
		if err := rows.Scan(&s.ID, &s.TrainID, &s.StationID, &arr, &dep, &s.Sequence); err != nil {
			return out, err
		}
		s.ArrivalTime = arr.String
		s.DepartureTime = dep.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ScheduleRepo) Add(s models.ScheduleStop) (int64, error) {
	arr := nullIfEmpty(s.ArrivalTime)
	dep := nullIfEmpty(s.DepartureTime)
	res, err := r.db().Exec(`
		INSERT INTO train_schedule (train_id, station_id, arrival_time, departure_time, sequence)
		VALUES (?,?,?,?,?)`,
		s.TrainID, s.StationID, arr, dep, s.Sequence,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ScheduleRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM train_schedule WHERE schedule_id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TrainDeparture is a search result row: a train serving from->to with the
// departure at the from stop and arrival at the to stop.
type TrainDeparture struct {
	TrainID       int64
	TrainName     string
	TrainType     string
	TotalSeats    int
	DepartureTime string
	ArrivalTime   string
}

// SearchTrains finds trains whose schedule visits fromStation before
// toStation (by stop sequence) on the same route.
func (r ScheduleRepo) SearchTrains(fromStation, toStation int64) ([]TrainDeparture, error) {
	rows, err := r.db().Query(`
		SELECT t.train_id, t.train_name, t.train_type, t.total_seats,
		       s1.departure_time, s2.arrival_time
		FROM trains AS t
		JOIN train_schedule AS s1 ON t.train_id = s1.train_id
		JOIN train_schedule AS s2 ON t.train_id = s2.train_id
		WHERE s1.station_id = ? AND s2.station_id = ? AND s1.sequence < s2.sequence
		GROUP BY t.train_id, t.train_name, t.train_type, t.total_seats,
		         s1.departure_time, s2.arrival_time`,
		fromStation, toStation,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TrainDeparture{}
	for rows.Next() {
		var d TrainDeparture
		var dep, arr sql.NullString
		if err := rows.Scan(&d.TrainID, &d.TrainName, &d.TrainType, &d.TotalSeats, &dep, &arr); err != nil {
			return out, err
		}
		d.DepartureTime = dep.String
		d.ArrivalTime = arr.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// nullIfEmpty stores optional strings without wiping existing data.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
