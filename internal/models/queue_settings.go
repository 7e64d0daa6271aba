package models

// Ajustes da fila de espera, editáveis pelo painel.
type QueueSettings struct {
	Enabled bool `json:"enabled"`
	MaxSize int  `json:"max_size"`
}
