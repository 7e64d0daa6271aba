package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// Repository é o dono do estado dos agendamentos. Toda operação é atômica
// do ponto de vista do chamador: nenhuma mutação se entrelaça com outra.
type Repository interface {
	// -------- Appointment (create) --------
	// CreateAppointment confere a capacidade da fila, atribui a posição
	// (pendentes+confirmados + 1) e insere, sob o mesmo lock.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change) --------
	GetAppointment(ctx context.Context, id string) (models.Appointment, error)

	// TransitionAppointment aplica a ação de domínio e rederiva as posições
	// da fila em um passo só. Erro do apply deixa o registro intacto.
	TransitionAppointment(
		ctx context.Context,
		id string,
		apply func(*models.Appointment) error,
	) (models.Appointment, error)

	// -------- Fila --------
	ListQueue(ctx context.Context) []models.Appointment
	FirstInQueue(ctx context.Context) (models.Appointment, bool)

	// -------- Disponibilidade / agenda --------
	IsSlotTaken(ctx context.Context, barberID, date, hhmm string) bool
	ListAppointmentsForDay(ctx context.Context, date string) []models.Appointment

	// -------- Ajustes da fila --------
	GetQueueSettings(ctx context.Context) models.QueueSettings
	UpdateQueueSettings(
		ctx context.Context,
		update func(*models.QueueSettings),
	) models.QueueSettings
}
