package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"
	"railway-backend/internal/utils"
)

// TicketSummary is a read-only projection for confirmation screens and
// booking lists.
type TicketSummary struct {
	PNR         string `json:"pnr"`
	Passenger   string `json:"passenger_name,omitempty"`
	TrainName   string `json:"train_name"`
	FromName    string `json:"from_station_name"`
	ToName      string `json:"to_station_name"`
	SeatNumber  string `json:"seat_number"`
	ClassType   string `json:"class_type,omitempty"`
	BookingDate string `json:"booking_date,omitempty"`
	Status      string `json:"status"`
}

// CancelResult distinguishes a fresh cancellation from the idempotent
// already-cancelled case, which is informational, not an error.
type CancelResult struct {
	PNR              string `json:"pnr"`
	AlreadyCancelled bool   `json:"already_cancelled"`
}

type CancellationService struct {
	Tickets   TicketStore
	Trains    TrainStore
	Stations  StationDirectory
	RequestID string
}

func (s CancellationService) tickets() TicketStore {
	if s.Tickets != nil {
		return s.Tickets
	}
	return repositories.TicketRepo{}
}

func (s CancellationService) trains() TrainStore {
	if s.Trains != nil {
		return s.Trains
	}
	return repositories.TrainRepo{}
}

func (s CancellationService) stations() StationDirectory {
	if s.Stations != nil {
		return s.Stations
	}
	return repositories.StationRepo{}
}

// View returns the ticket summary for a pnr without mutating anything.
func (s CancellationService) View(code string) (TicketSummary, error) {
	var out TicketSummary
	code = strings.TrimSpace(code)
	if code == "" {
		return out, domain.ValidationError{Field: "pnr", Msg: "pnr wajib diisi"}
	}
	t, err := s.tickets().GetByPNR(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	return TicketSummary{
		PNR:         t.PNR,
		Passenger:   t.PassengerName,
		TrainName:   s.trains().NameByID(t.TrainID),
		FromName:    s.stations().NameByID(t.FromStation),
		ToName:      s.stations().NameByID(t.ToStation),
		SeatNumber:  t.SeatNumber,
		ClassType:   t.ClassType,
		BookingDate: utils.FormatDate(t.BookingDate),
		Status:      t.Status,
	}, nil
}

// Cancel flips a Confirmed ticket to Cancelled. Cancelling twice is
// idempotent; the freed seat becomes visible to the next allocation because
// occupancy is recomputed from live Confirmed rows.
func (s CancellationService) Cancel(code string) (CancelResult, error) {
	var out CancelResult
	code = strings.TrimSpace(code)
	if code == "" {
		return out, domain.ValidationError{Field: "pnr", Msg: "pnr wajib diisi"}
	}

	t, err := s.tickets().GetByPNR(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	if t.Status == models.StatusCancelled {
		return CancelResult{PNR: t.PNR, AlreadyCancelled: true}, nil
	}

	if err := s.tickets().UpdateStatus(t.PNR, models.StatusCancelled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "cancellation", "cancel",
		fmt.Sprintf("pnr=%s train_id=%d seat=%s", t.PNR, t.TrainID, t.SeatNumber))

	return CancelResult{PNR: t.PNR}, nil
}
