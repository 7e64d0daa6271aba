package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	domainQueue "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
)

// Cartões do topo da tela de fila do painel.
type QueueStatsOutput struct {
	Pending           int  `json:"pending"`
	InQueue           int  `json:"in_queue"`
	MaxSize           int  `json:"max_size"`
	Enabled           bool `json:"enabled"`
	AvgServiceMinutes int  `json:"avg_service_minutes"`
}

type GetQueueStats struct {
	repo              domain.Repository
	avgServiceMinutes int
}

func NewGetQueueStats(
	repo domain.Repository,
	avgServiceMinutes int,
) *GetQueueStats {
	if avgServiceMinutes <= 0 {
		avgServiceMinutes = domainQueue.DefaultAvgServiceMinutes
	}
	return &GetQueueStats{
		repo:              repo,
		avgServiceMinutes: avgServiceMinutes,
	}
}

func (uc *GetQueueStats) Execute(ctx context.Context) QueueStatsOutput {
	entries := uc.repo.ListQueue(ctx)
	settings := uc.repo.GetQueueSettings(ctx)

	pending := 0
	for _, ap := range entries {
		if domain.Status(ap.Status) == domain.StatusPending {
			pending++
		}
	}

	return QueueStatsOutput{
		Pending:           pending,
		InQueue:           len(entries),
		MaxSize:           settings.MaxSize,
		Enabled:           settings.Enabled,
		AvgServiceMinutes: uc.avgServiceMinutes,
	}
}
