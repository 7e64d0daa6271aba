package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ListQueue devolve a fila derivada: pending/confirmed na ordem de criação,
// posições densas a partir de 1.
type ListQueue struct {
	repo domain.Repository
}

func NewListQueue(repo domain.Repository) *ListQueue {
	return &ListQueue{repo: repo}
}

func (uc *ListQueue) Execute(ctx context.Context) []models.Appointment {
	return uc.repo.ListQueue(ctx)
}
