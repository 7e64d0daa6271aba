package models

// TimeSlot é um valor gerado sob demanda; nunca é mutado, só regenerado.
type TimeSlot struct {
	Time      string `json:"time"` // HH:mm (24h)
	Available bool   `json:"available"`
}
