package dto

type QueueEntryDTO struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Status   string `json:"status"`

	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`

	EstimatedWaitMin int `json:"estimated_wait_min"`
}
