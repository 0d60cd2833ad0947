package models

// Train is the bookable unit. TotalSeats is fixed for booking purposes;
// capacity changes are an administrative concern.
type Train struct {
	ID         int64  `json:"train_id"`
	Name       string `json:"train_name"`
	Type       string `json:"train_type"`
	TotalSeats int    `json:"total_seats"`
}
