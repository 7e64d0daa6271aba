package dto

type AppointmentListDTO struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Position int    `json:"position,omitempty"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceName        string `json:"service_name"`
	ServiceDurationMin int    `json:"service_duration_min"`
	BarberName         string `json:"barber_name"`
}
