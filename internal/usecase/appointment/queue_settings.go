package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// Ajustes da fila (painel)
// ======================================================

type UpdateQueueSettingsInput struct {
	Enabled *bool
	MaxSize *int
}

type QueueSettings struct {
	repo domain.Repository
}

func NewQueueSettings(repo domain.Repository) *QueueSettings {
	return &QueueSettings{repo: repo}
}

func (uc *QueueSettings) Get(ctx context.Context) models.QueueSettings {
	return uc.repo.GetQueueSettings(ctx)
}

func (uc *QueueSettings) Update(
	ctx context.Context,
	in UpdateQueueSettingsInput,
) (models.QueueSettings, error) {

	if in.MaxSize != nil && *in.MaxSize < 1 {
		return models.QueueSettings{}, httperr.ErrValidation("invalid_max_queue_size")
	}

	updated := uc.repo.UpdateQueueSettings(ctx, func(s *models.QueueSettings) {
		if in.Enabled != nil {
			s.Enabled = *in.Enabled
		}
		if in.MaxSize != nil {
			s.MaxSize = *in.MaxSize
		}
	})

	return updated, nil
}
