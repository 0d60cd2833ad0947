package services

import (
	"railway-backend/internal/domain"
	"railway-backend/internal/repositories"
	"railway-backend/internal/seat"
)

type ScheduleSearcher interface {
	SearchTrains(fromStation, toStation int64) ([]repositories.TrainDeparture, error)
}

// TrainOption is one search result: a train serving the route with its live
// availability, computed from Confirmed tickets on every search.
type TrainOption struct {
	TrainID        int64  `json:"train_id"`
	TrainName      string `json:"train_name"`
	TrainType      string `json:"train_type"`
	DepartureTime  string `json:"departure_time,omitempty"`
	ArrivalTime    string `json:"arrival_time,omitempty"`
	AvailableSeats int    `json:"available_seats"`
}

type SearchService struct {
	Schedule ScheduleSearcher
	Tickets  TicketStore
}

func (s SearchService) schedule() ScheduleSearcher {
	if s.Schedule != nil {
		return s.Schedule
	}
	return repositories.ScheduleRepo{}
}

func (s SearchService) tickets() TicketStore {
	if s.Tickets != nil {
		return s.Tickets
	}
	return repositories.TicketRepo{}
}

// Search lists trains whose schedule visits fromStation before toStation.
func (s SearchService) Search(fromStation, toStation int64) ([]TrainOption, error) {
	if fromStation <= 0 || toStation <= 0 {
		return nil, domain.ValidationError{Field: "station", Msg: "stasiun asal dan tujuan wajib diisi"}
	}
	if fromStation == toStation {
		return nil, domain.ValidationError{Field: "to_station", Msg: "stasiun tujuan harus berbeda dari asal"}
	}

	departures, err := s.schedule().SearchTrains(fromStation, toStation)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	out := make([]TrainOption, 0, len(departures))
	for _, d := range departures {
		labels, err := s.tickets().ConfirmedSeatLabels(d.TrainID)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, TrainOption{
			TrainID:        d.TrainID,
			TrainName:      d.TrainName,
			TrainType:      d.TrainType,
			DepartureTime:  d.DepartureTime,
			ArrivalTime:    d.ArrivalTime,
			AvailableSeats: seat.Available(d.TotalSeats, labels),
		})
	}
	return out, nil
}
