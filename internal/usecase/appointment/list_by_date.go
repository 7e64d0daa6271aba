package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ListAppointmentsByDate é a agenda do dia: todos os status, ordem de horário.
type ListAppointmentsByDate struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	clock timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	if date == "" {
		date = timezone.Today(uc.clock)
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	return uc.repo.ListAppointmentsForDay(ctx, date), nil
}
