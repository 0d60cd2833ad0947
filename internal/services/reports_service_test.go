package services

import (
	"strings"
	"testing"
	"time"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"
)

type fakeTicketLister struct {
	rows []models.Ticket
	got  repositories.TicketFilter
}

func (f *fakeTicketLister) List(filter repositories.TicketFilter) ([]models.Ticket, error) {
	f.got = filter
	return f.rows, nil
}

func TestTicketReportResolvesNames(t *testing.T) {
	lister := &fakeTicketLister{rows: []models.Ticket{{
		PNR:           "A1B2C3D4",
		TrainID:       1,
		FromStation:   10,
		ToStation:     20,
		SeatNumber:    "S1-1",
		ClassType:     models.ClassSleeper,
		BookingDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:        models.StatusConfirmed,
		PassengerName: "Budi Santoso",
	}}}
	svc := ReportsService{
		Tickets:  lister,
		Trains:   fakeTrainStore{trains: map[int64]models.Train{1: {ID: 1, Name: "Argo Bromo"}}},
		Stations: fakeStations{},
	}

	filter := repositories.TicketFilter{TrainID: 1, Status: models.StatusConfirmed}
	rows, err := svc.TicketReport(filter)
	if err != nil {
		t.Fatalf("TicketReport: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].TrainName != "Argo Bromo" || rows[0].FromName != "Station 10" {
		t.Fatalf("names not resolved: %+v", rows[0])
	}
	if rows[0].BookingDate != "2025-06-01" {
		t.Fatalf("booking date = %q", rows[0].BookingDate)
	}
	if lister.got != filter {
		t.Fatalf("filter not passed through: %+v", lister.got)
	}
}

func TestTicketReportRejectsUnknownStatus(t *testing.T) {
	svc := ReportsService{Tickets: &fakeTicketLister{}}
	_, err := svc.TicketReport(repositories.TicketFilter{Status: "Pending"})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestWriteReportCSV(t *testing.T) {
	rows := []TicketSummary{{
		PNR:         "A1B2C3D4",
		Passenger:   "Budi Santoso",
		TrainName:   "Argo Bromo",
		FromName:    "Gambir",
		ToName:      "Surabaya Gubeng",
		SeatNumber:  "S1-1",
		ClassType:   models.ClassAC,
		BookingDate: "2025-06-01",
		Status:      models.StatusConfirmed,
	}}

	var sb strings.Builder
	if err := WriteReportCSV(&sb, rows); err != nil {
		t.Fatalf("WriteReportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "PNR,Passenger,Train") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "A1B2C3D4") || !strings.Contains(lines[1], "S1-1") {
		t.Fatalf("row = %q", lines[1])
	}
}
