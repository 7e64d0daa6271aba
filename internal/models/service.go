package models

// Serviço do catálogo. Imutável depois do seed; o core só referencia por ID.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	// Tag de ícone resolvida pela camada de apresentação (Scissors, Crown, ...)
	Icon string `json:"icon"`
}
