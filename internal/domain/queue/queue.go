package queue

import (
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// Fila de espera (projeção pura)
// ======================================================

// Média histórica de atendimento usada na estimativa de espera.
const DefaultAvgServiceMinutes = 15

// Derive filtra pending/confirmed, preserva a ordem de criação e renumera
// as posições densamente a partir de 1. Não muta a entrada; devolve cópias.
// Idempotente: derivar duas vezes o mesmo conjunto dá o mesmo resultado.
func Derive(appts []*models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(appts))

	pos := 0
	for _, ap := range appts {
		if ap == nil || !domain.InQueue(domain.Status(ap.Status)) {
			continue
		}
		pos++

		cp := *ap
		cp.Position = pos
		out = append(out, cp)
	}

	return out
}

// EstimatedWaitMin estima a espera de uma posição da fila.
// Usa a média configurada, não a duração do serviço: o serviço do
// próximo da fila só é conhecido quando ele é chamado.
func EstimatedWaitMin(position int, avgServiceMinutes int) int {
	if position < 1 {
		return 0
	}
	if avgServiceMinutes <= 0 {
		avgServiceMinutes = DefaultAvgServiceMinutes
	}
	return (position - 1) * avgServiceMinutes
}
