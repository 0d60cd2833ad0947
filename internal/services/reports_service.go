package services

import (
	"encoding/csv"
	"io"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"
	"railway-backend/internal/utils"
)

type TicketLister interface {
	List(f repositories.TicketFilter) ([]models.Ticket, error)
}

type ReportsService struct {
	Tickets  TicketLister
	Trains   TrainStore
	Stations StationDirectory
}

func (s ReportsService) tickets() TicketLister {
	if s.Tickets != nil {
		return s.Tickets
	}
	return repositories.TicketRepo{}
}

func (s ReportsService) trains() TrainStore {
	if s.Trains != nil {
		return s.Trains
	}
	return repositories.TrainRepo{}
}

func (s ReportsService) stations() StationDirectory {
	if s.Stations != nil {
		return s.Stations
	}
	return repositories.StationRepo{}
}

// TicketReport returns booking rows with resolved display names, filtered by
// train, status and booking-date range.
func (s ReportsService) TicketReport(f repositories.TicketFilter) ([]TicketSummary, error) {
	if f.Status != "" && f.Status != models.StatusConfirmed && f.Status != models.StatusCancelled {
		return nil, domain.ValidationError{Field: "status", Msg: "status harus Confirmed atau Cancelled"}
	}
	rows, err := s.tickets().List(f)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	out := make([]TicketSummary, 0, len(rows))
	for _, t := range rows {
		out = append(out, TicketSummary{
			PNR:         t.PNR,
			Passenger:   t.PassengerName,
			TrainName:   s.trains().NameByID(t.TrainID),
			FromName:    s.stations().NameByID(t.FromStation),
			ToName:      s.stations().NameByID(t.ToStation),
			SeatNumber:  t.SeatNumber,
			ClassType:   t.ClassType,
			BookingDate: utils.FormatDate(t.BookingDate),
			Status:      t.Status,
		})
	}
	return out, nil
}

var reportHeader = []string{"PNR", "Passenger", "Train", "From", "To", "Seat", "Class", "Status", "Booking Date"}

// WriteReportCSV streams a ticket report as CSV.
func WriteReportCSV(w io.Writer, rows []TicketSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.PNR, r.Passenger, r.TrainName, r.FromName, r.ToName,
			r.SeatNumber, r.ClassType, r.Status, r.BookingDate,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
