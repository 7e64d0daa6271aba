package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceID string `json:"service_id"`
	BarberID  string `json:"barber_id"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:mm

	Status string `json:"status"`

	// Posição na fila (1-based, densa). Zero quando o status é terminal.
	Position int `json:"position,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
