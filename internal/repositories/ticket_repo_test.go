package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func sampleTicket() models.Ticket {
	return models.Ticket{
		PNR:             "A1B2C3D4",
		TrainID:         1,
		PassengerID:     7,
		FromStation:     10,
		ToStation:       20,
		SeatNumber:      "S1-1",
		ClassType:       models.ClassAC,
		BookingDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.StatusConfirmed,
		PassengerName:   "Budi Santoso",
		PassengerAge:    34,
		PassengerGender: "Male",
	}
}

func TestConfirmedSeatLabels(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT seat_number FROM tickets").
		WithArgs(int64(1), models.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).
			AddRow("S1-1").AddRow("S1-3").AddRow("  "))

	repo := TicketRepo{DB: db}
	labels, err := repo.ConfirmedSeatLabels(1)
	if err != nil {
		t.Fatalf("ConfirmedSeatLabels: %v", err)
	}
	if len(labels) != 2 || labels[0] != "S1-1" || labels[1] != "S1-3" {
		t.Fatalf("labels = %v, want [S1-1 S1-3]", labels)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertMapsDuplicateToConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1#S1-1' for key 'uniq_active_seat'"}
	mock.ExpectExec("INSERT INTO tickets").WillReturnError(dup)

	repo := TicketRepo{DB: db}
	insertErr := repo.Insert(sampleTicket())
	if !domain.IsConflict(insertErr) {
		t.Fatalf("err = %v, want ConflictError", insertErr)
	}
	if !errors.Is(insertErr, dup) {
		t.Fatalf("driver error not wrapped: %v", insertErr)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertPassesThroughOtherErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO tickets").WillReturnError(boom)

	repo := TicketRepo{DB: db}
	insertErr := repo.Insert(sampleTicket())
	if domain.IsConflict(insertErr) {
		t.Fatalf("non-duplicate error mapped to conflict: %v", insertErr)
	}
	if !errors.Is(insertErr, boom) {
		t.Fatalf("err = %v, want %v", insertErr, boom)
	}
}

func TestPNRExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM tickets").WithArgs("A1B2C3D4").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM tickets").WithArgs("ZZZZZZZZ").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	repo := TicketRepo{DB: db}
	used, err := repo.PNRExists("A1B2C3D4")
	if err != nil || !used {
		t.Fatalf("used = %v err = %v, want true nil", used, err)
	}
	used, err = repo.PNRExists("ZZZZZZZZ")
	if err != nil || used {
		t.Fatalf("used = %v err = %v, want false nil", used, err)
	}
}

func TestUpdateStatusNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE tickets SET status").
		WithArgs(models.StatusCancelled, "ZZZZZZZZ").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TicketRepo{DB: db}
	updateErr := repo.UpdateStatus("ZZZZZZZZ", models.StatusCancelled)
	if !errors.Is(updateErr, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", updateErr)
	}
}

func TestListBuildsFilteredQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"pnr", "train_id", "passenger_id", "from_station", "to_station", "seat_number",
		"class_type", "booking_date", "status", "passenger_name", "passenger_age", "passenger_gender",
	}
	s := sampleTicket()
	mock.ExpectQuery("FROM tickets WHERE train_id=\\? AND status=\\? AND booking_date >= \\?").
		WithArgs(int64(1), models.StatusConfirmed, "2025-06-01").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			s.PNR, s.TrainID, s.PassengerID, s.FromStation, s.ToStation, s.SeatNumber,
			s.ClassType, s.BookingDate, s.Status, s.PassengerName, s.PassengerAge, s.PassengerGender,
		))

	repo := TicketRepo{DB: db}
	rows, err := repo.List(TicketFilter{TrainID: 1, Status: models.StatusConfirmed, StartDate: "2025-06-01"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].PNR != s.PNR {
		t.Fatalf("rows = %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
