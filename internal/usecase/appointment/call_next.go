package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
)

// ======================================================
// USE CASE — chamar o próximo da fila
// ======================================================

// CallNext anuncia o primeiro da fila. Não muda status: chamar é um
// anúncio, concluir é outra ação. Fila vazia é no-op silencioso.
type CallNext struct {
	repo   domain.Repository
	notify *notify.Emitter
}

func NewCallNext(repo domain.Repository, emitter *notify.Emitter) *CallNext {
	return &CallNext{
		repo:   repo,
		notify: emitter,
	}
}

func (uc *CallNext) Execute(ctx context.Context) (models.Appointment, bool) {
	ap, ok := uc.repo.FirstInQueue(ctx)
	if !ok {
		// fila vazia: nada a chamar, nenhuma notificação
		return models.Appointment{}, false
	}

	uc.notify.Emit(notify.Event{
		Action:     notify.ActionCalled,
		ClientName: ap.ClientName,
	})

	return ap, true
}
