package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"
	"railway-backend/internal/pnr"
	"railway-backend/internal/repositories"
	"railway-backend/internal/seat"
	"railway-backend/internal/utils"
)

// maxBookingAttempts bounds the allocation retry loop so heavy contention
// surfaces as BookingConflictError instead of livelock.
const maxBookingAttempts = 3

// TicketStore is the storage capability the booking and cancellation flows
// depend on. Insert must reject a duplicate seat or pnr with a ConflictError.
type TicketStore interface {
	ConfirmedSeatLabels(trainID int64) ([]string, error)
	PNRExists(code string) (bool, error)
	Insert(t models.Ticket) error
	GetByPNR(code string) (models.Ticket, error)
	UpdateStatus(code, status string) error
	ListByPassenger(passengerID int64) ([]models.Ticket, error)
}

type TrainStore interface {
	GetByID(id int64) (models.Train, error)
	NameByID(id int64) string
}

type StationDirectory interface {
	NameByID(id int64) string
}

type FareLookup interface {
	Lookup(fromStation, toStation int64, classType string) (float64, bool, error)
}

// TrainLocks serializes seat allocation per train. Each train's pool is
// small, so contention stays local to that train.
type TrainLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (l *TrainLocks) For(trainID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = map[int64]*sync.Mutex{}
	}
	m, ok := l.locks[trainID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[trainID] = m
	}
	return m
}

var defaultTrainLocks TrainLocks

type BookingRequest struct {
	TrainID     int64
	FromStation int64
	ToStation   int64
	ClassType   string
	PassengerID int64
	Name        string
	Age         int
	Gender      string
}

// BookingConfirmation carries the persisted ticket plus the resolved display
// fields the caller needs for confirmation and printing. Fare lives only
// here, not on the ticket row.
type BookingConfirmation struct {
	Ticket      models.Ticket `json:"ticket"`
	TrainName   string        `json:"train_name"`
	FromName    string        `json:"from_station_name"`
	ToName      string        `json:"to_station_name"`
	Fare        float64       `json:"fare"`
	FareWarning bool          `json:"fare_warning"`
}

type BookingService struct {
	Tickets   TicketStore
	Trains    TrainStore
	Stations  StationDirectory
	Fares     FareLookup
	Locks     *TrainLocks
	RequestID string
}

func (s BookingService) tickets() TicketStore {
	if s.Tickets != nil {
		return s.Tickets
	}
	return repositories.TicketRepo{}
}

func (s BookingService) trains() TrainStore {
	if s.Trains != nil {
		return s.Trains
	}
	return repositories.TrainRepo{}
}

func (s BookingService) stations() StationDirectory {
	if s.Stations != nil {
		return s.Stations
	}
	return repositories.StationRepo{}
}

func (s BookingService) fares() FareLookup {
	if s.Fares != nil {
		return s.Fares
	}
	return repositories.FareRepo{}
}

func (s BookingService) locks() *TrainLocks {
	if s.Locks != nil {
		return s.Locks
	}
	return &defaultTrainLocks
}

// Book allocates the lowest free seat on a train and persists a Confirmed
// ticket with a fresh pnr. Allocation for one train is serialized by a
// per-train lock; the store's uniqueness constraints back it up, and a lost
// race re-reads occupancy before retrying.
func (s BookingService) Book(req BookingRequest) (BookingConfirmation, error) {
	var out BookingConfirmation

	req.Name = utils.NormalizeSpace(req.Name)
	req.Gender = strings.TrimSpace(req.Gender)
	req.ClassType = strings.TrimSpace(req.ClassType)

	switch {
	case req.TrainID <= 0:
		return out, domain.ValidationError{Field: "train_id", Msg: "id tidak valid"}
	case req.PassengerID <= 0:
		return out, domain.ValidationError{Field: "passenger_id", Msg: "id tidak valid"}
	case req.FromStation <= 0 || req.ToStation <= 0:
		return out, domain.ValidationError{Field: "station", Msg: "stasiun asal dan tujuan wajib diisi"}
	case req.FromStation == req.ToStation:
		return out, domain.ValidationError{Field: "to_station", Msg: "stasiun tujuan harus berbeda dari asal"}
	case !models.ValidClass(req.ClassType):
		return out, domain.ValidationError{Field: "class_type", Msg: "kelas harus Sleeper, AC, atau General"}
	case req.Name == "":
		return out, domain.ValidationError{Field: "passenger_name", Msg: "nama wajib diisi"}
	case req.Age <= 0 || req.Age >= 120:
		return out, domain.ValidationError{Field: "passenger_age", Msg: "umur harus antara 1 dan 119"}
	case req.Gender == "":
		return out, domain.ValidationError{Field: "passenger_gender", Msg: "gender wajib diisi"}
	}

	mu := s.locks().For(req.TrainID)
	mu.Lock()
	defer mu.Unlock()

	train, err := s.trains().GetByID(req.TrainID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "train", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	// A missing fare rule is not a booking failure: fare falls back to 0.00
	// with a caller-visible warning.
	fare, fareFound, err := s.fares().Lookup(req.FromStation, req.ToStation, req.ClassType)
	if err != nil {
		fare, fareFound = 0, false
	}

	var ticket models.Ticket
	var lastErr error
	booked := false
	for attempt := 0; attempt < maxBookingAttempts; attempt++ {
		labels, err := s.tickets().ConfirmedSeatLabels(req.TrainID)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		label, ok := seat.NextFreeLabel(train.TotalSeats, labels)
		if !ok {
			return out, domain.TrainFullError{TrainID: req.TrainID}
		}
		code, err := s.newPNR()
		if err != nil {
			return out, domain.InternalError{Err: err}
		}

		ticket = models.Ticket{
			PNR:             code,
			TrainID:         req.TrainID,
			PassengerID:     req.PassengerID,
			FromStation:     req.FromStation,
			ToStation:       req.ToStation,
			SeatNumber:      label,
			ClassType:       req.ClassType,
			BookingDate:     utils.NowUTC(),
			Status:          models.StatusConfirmed,
			PassengerName:   req.Name,
			PassengerAge:    req.Age,
			PassengerGender: req.Gender,
		}

		if err := s.tickets().Insert(ticket); err != nil {
			if domain.IsConflict(err) {
				// lost the race for this seat or pnr; re-read occupancy
				lastErr = err
				continue
			}
			return out, domain.InternalError{Err: err}
		}
		booked = true
		break
	}
	if !booked {
		return out, domain.BookingConflictError{TrainID: req.TrainID, Attempts: maxBookingAttempts, Err: lastErr}
	}

	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("pnr=%s train_id=%d seat=%s", ticket.PNR, ticket.TrainID, ticket.SeatNumber))

	return BookingConfirmation{
		Ticket:      ticket,
		TrainName:   s.trains().NameByID(req.TrainID),
		FromName:    s.stations().NameByID(req.FromStation),
		ToName:      s.stations().NameByID(req.ToStation),
		Fare:        fare,
		FareWarning: !fareFound,
	}, nil
}

// ListByPassenger returns a passenger's tickets, newest booking first, with
// resolved display names.
func (s BookingService) ListByPassenger(passengerID int64) ([]TicketSummary, error) {
	if passengerID <= 0 {
		return nil, domain.ValidationError{Field: "passenger_id", Msg: "id tidak valid"}
	}
	rows, err := s.tickets().ListByPassenger(passengerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	out := make([]TicketSummary, 0, len(rows))
	for _, t := range rows {
		out = append(out, s.summarize(t))
	}
	return out, nil
}

func (s BookingService) summarize(t models.Ticket) TicketSummary {
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
	}
}

func (s BookingService) newPNR() (string, error) {
	var storeErr error
	code := pnr.Generate(func(c string) bool {
		used, err := s.tickets().PNRExists(c)
		if err != nil {
			storeErr = err
			return false
		}
		return used
	})
	if storeErr != nil {
		return "", storeErr
	}
	return code, nil
}
