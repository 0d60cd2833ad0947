package models

import "time"

// Ticket lifecycle states. A ticket is created Confirmed and may flip to
// Cancelled exactly once; rows are never deleted.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Ticket is the persisted booking record. The seat label never changes once
// assigned; only a Confirmed ticket occupies its seat. Fare is computed at
// booking time for display and is not stored on the row.
type Ticket struct {
	PNR             string    `json:"pnr"`
	TrainID         int64     `json:"train_id"`
	PassengerID     int64     `json:"passenger_id"`
	FromStation     int64     `json:"from_station"`
	ToStation       int64     `json:"to_station"`
	SeatNumber      string    `json:"seat_number"`
	ClassType       string    `json:"class_type"`
	BookingDate     time.Time `json:"booking_date"`
	Status          string    `json:"status"`
	PassengerName   string    `json:"passenger_name"`
	PassengerAge    int       `json:"passenger_age"`
	PassengerGender string    `json:"passenger_gender"`
}
