package models

type Station struct {
	ID    int64  `json:"station_id"`
	Name  string `json:"station_name"`
	Code  string `json:"station_code"`
	City  string `json:"city"`
	State string `json:"state"`
}
