package appointment

import "github.com/BruksfildServices01/barber-queue/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal: completed e cancelled não aceitam mais nenhuma ação.
func IsTerminal(current Status) bool {
	return current == StatusCompleted || current == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm: reconfirmar um agendamento confirmado é permitido
// (o painel faz isso); só estado terminal rejeita.
func CanConfirm(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrInvalidTransition("invalid_state")
	}
	return nil
}

// InQueue: só pending/confirmed participam da fila de espera.
func InQueue(current Status) bool {
	return current == StatusPending || current == StatusConfirmed
}
