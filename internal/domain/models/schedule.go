package models

// ScheduleStop is one row of a train's route, ordered by Sequence.
type ScheduleStop struct {
	ID            int64  `json:"schedule_id"`
	TrainID       int64  `json:"train_id"`
	StationID     int64  `json:"station_id"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	Sequence      int    `json:"sequence"`
}
