package models

// ClassType values accepted on fare rules and bookings.
const (
	ClassSleeper = "Sleeper"
	ClassAC      = "AC"
	ClassGeneral = "General"
)

// ValidClass reports whether c is one of the enumerated class types.
func ValidClass(c string) bool {
	switch c {
	case ClassSleeper, ClassAC, ClassGeneral:
		return true
	}
	return false
}

// FareRule prices a (from, to, class) triple. At most one rule per triple.
type FareRule struct {
	ID          int64   `json:"fare_id"`
	FromStation int64   `json:"from_station"`
	ToStation   int64   `json:"to_station"`
	ClassType   string  `json:"class_type"`
	Amount      float64 `json:"fare_amount"`
}
