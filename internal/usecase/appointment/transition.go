package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// USE CASE — confirmar / cancelar / concluir
// ======================================================

type TransitionAppointment struct {
	repo   domain.Repository
	notify *notify.Emitter
	clock  timezone.Clock
}

func NewTransitionAppointment(
	repo domain.Repository,
	emitter *notify.Emitter,
	clock timezone.Clock,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:   repo,
		notify: emitter,
		clock:  clock,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	id string,
	action domain.Action,
) (models.Appointment, error) {

	now := uc.clock.Now()

	// A ação de domínio e a rederivação da fila acontecem
	// dentro do mesmo lock do registro.
	ap, err := uc.repo.TransitionAppointment(ctx, id,
		func(ap *models.Appointment) error {
			return domain.Apply(ap, action, now)
		})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.notify.Emit(notify.Event{
		Action:     notifyAction(action),
		ClientName: ap.ClientName,
	})

	return ap, nil
}

func notifyAction(action domain.Action) string {
	switch action {
	case domain.ActionConfirm:
		return notify.ActionConfirmed
	case domain.ActionCancel:
		return notify.ActionCancelled
	case domain.ActionComplete:
		return notify.ActionCompleted
	}
	return string(action)
}
