package models

type WorkingHours struct {
	Weekday int `json:"weekday"` // 0 = domingo

	StartTime string `json:"start_time"` // HH:mm
	EndTime   string `json:"end_time"`   // HH:mm
	Active    bool   `json:"active"`
}
