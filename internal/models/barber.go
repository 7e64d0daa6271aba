package models

// Barbeiro é uma unidade de capacidade: um slot por barbeiro por horário.
type Barber struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Photo       string   `json:"photo"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Available   bool     `json:"available"`
}
