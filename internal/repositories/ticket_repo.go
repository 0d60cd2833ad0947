package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "railway-backend/internal/config"
	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type TicketRepo struct {
	DB *sql.DB
}

func (r TicketRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureTable creates the tickets table with the uniqueness constraints the
// booking flow relies on: pnr is globally unique, and the generated
// active_seat column keeps (train_id, seat_number) unique among Confirmed
// rows only, so cancelled tickets release their seat without losing audit
// history.
func (r TicketRepo) EnsureTable() error {
	ddl := `
CREATE TABLE IF NOT EXISTS tickets (
	ticket_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	pnr CHAR(8) NOT NULL,
	train_id BIGINT NOT NULL,
	passenger_id BIGINT NOT NULL,
	from_station BIGINT NOT NULL,
	to_station BIGINT NOT NULL,
	seat_number VARCHAR(20) NOT NULL,
	class_type VARCHAR(20) NOT NULL,
	booking_date DATE NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'Confirmed',
	passenger_name VARCHAR(255) NOT NULL,
	passenger_age INT NOT NULL,
	passenger_gender VARCHAR(20) NOT NULL,
	active_seat VARCHAR(64) GENERATED ALWAYS AS
		(CASE WHEN status = 'Confirmed' THEN CONCAT(train_id, '#', seat_number) ELSE NULL END) STORED,
	UNIQUE KEY uniq_pnr (pnr),
	UNIQUE KEY uniq_active_seat (active_seat),
	KEY idx_train (train_id),
	KEY idx_passenger (passenger_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.db().Exec(ddl)
	return err
}

// ConfirmedSeatLabels returns the seat labels currently held by Confirmed
// tickets on a train. Occupancy is derived from this live set on every call.
func (r TicketRepo) ConfirmedSeatLabels(trainID int64) ([]string, error) {
	rows, err := r.db().Query(
		`SELECT seat_number FROM tickets WHERE train_id=? AND status=?`,
		trainID, models.StatusConfirmed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var seat sql.NullString
		if err := rows.Scan(&seat); err != nil {
			return labels, err
		}
		if s := strings.TrimSpace(seat.String); s != "" {
			labels = append(labels, s)
		}
	}
	return labels, rows.Err()
}

func (r TicketRepo) PNRExists(code string) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM tickets WHERE pnr=? LIMIT 1`, code).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert persists a new ticket row. A duplicate seat or pnr is reported as a
// ConflictError so the coordinator can re-read occupancy and retry.
func (r TicketRepo) Insert(t models.Ticket) error {
	_, err := r.db().Exec(`
		INSERT INTO tickets
			(pnr, train_id, passenger_id, from_station, to_station, seat_number,
			 class_type, booking_date, status, passenger_name, passenger_age, passenger_gender)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.PNR, t.TrainID, t.PassengerID, t.FromStation, t.ToStation, t.SeatNumber,
		t.ClassType, t.BookingDate, t.Status, t.PassengerName, t.PassengerAge, t.PassengerGender,
	)
	if err != nil {
		var dup *mysql.MySQLError
		if errors.As(err, &dup) && dup.Number == mysqlDuplicateEntry {
			return domain.ConflictError{Resource: "ticket", Msg: "seat or pnr already taken", Err: err}
		}
		return err
	}
	return nil
}

func (r TicketRepo) GetByPNR(code string) (models.Ticket, error) {
	var t models.Ticket
	err := r.db().QueryRow(`
		SELECT pnr, train_id, passenger_id, from_station, to_station, seat_number,
		       class_type, booking_date, status, passenger_name, passenger_age, passenger_gender
		FROM tickets WHERE pnr=?`, code).Scan(
		&t.PNR, &t.TrainID, &t.PassengerID, &t.FromStation, &t.ToStation, &t.SeatNumber,
		&t.ClassType, &t.BookingDate, &t.Status, &t.PassengerName, &t.PassengerAge, &t.PassengerGender,
	)
	return t, err
}

// UpdateStatus flips the lifecycle state of one ticket. The row itself is
// never deleted.
func (r TicketRepo) UpdateStatus(code, status string) error {
	res, err := r.db().Exec(`UPDATE tickets SET status=? WHERE pnr=?`, status, code)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r TicketRepo) ListByPassenger(passengerID int64) ([]models.Ticket, error) {
	rows, err := r.db().Query(`
		SELECT pnr, train_id, passenger_id, from_station, to_station, seat_number,
		       class_type, booking_date, status, passenger_name, passenger_age, passenger_gender
		FROM tickets WHERE passenger_id=? ORDER BY booking_date DESC`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// TicketFilter narrows report queries; zero values mean "no filter".
type TicketFilter struct {
	TrainID   int64
	Status    string
	StartDate string
	EndDate   string
}

func (r TicketRepo) List(f TicketFilter) ([]models.Ticket, error) {
	query := `
		SELECT pnr, train_id, passenger_id, from_station, to_station, seat_number,
		       class_type, booking_date, status, passenger_name, passenger_age, passenger_gender
		FROM tickets`
	where := []string{}
	args := []any{}
	if f.TrainID > 0 {
		where = append(where, "train_id=?")
		args = append(args, f.TrainID)
	}
	if f.Status != "" {
		where = append(where, "status=?")
		args = append(args, f.Status)
	}
	if f.StartDate != "" {
		where = append(where, "booking_date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where = append(where, "booking_date <= ?")
		args = append(args, f.EndDate)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY booking_date DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows *sql.Rows) ([]models.Ticket, error) {
	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.PNR, &t.TrainID, &t.PassengerID, &t.FromStation, &t.ToStation, &t.SeatNumber,
			&t.ClassType, &t.BookingDate, &t.Status, &t.PassengerName, &t.PassengerAge, &t.PassengerGender,
		); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
