package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
)

// SimulateCall é o antigo timer aleatório do painel transformado em comando
// explícito: passa pela mesma interface serializada das demais mutações.
// Fila desativada ou vazia é no-op.
type SimulateCall struct {
	repo   domain.Repository
	notify *notify.Emitter
}

func NewSimulateCall(repo domain.Repository, emitter *notify.Emitter) *SimulateCall {
	return &SimulateCall{
		repo:   repo,
		notify: emitter,
	}
}

func (uc *SimulateCall) Execute(ctx context.Context) bool {
	if !uc.repo.GetQueueSettings(ctx).Enabled {
		return false
	}

	if _, ok := uc.repo.FirstInQueue(ctx); !ok {
		return false
	}

	uc.notify.Emit(notify.Event{Action: notify.ActionSimulated})
	return true
}
