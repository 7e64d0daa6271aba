package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type AvailabilityInput struct {
	BarberID string
	Date     string // vazio usa o dia de hoje
}

type GetAvailability struct {
	repo    domain.Repository
	catalog *catalog.Catalog
	clock   timezone.Clock
	slots   SlotPolicy
}

func NewGetAvailability(
	repo domain.Repository,
	cat *catalog.Catalog,
	clock timezone.Clock,
	slots SlotPolicy,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: cat,
		clock:   clock,
		slots:   slots,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]models.TimeSlot, error) {

	barber, ok := uc.catalog.GetBarber(in.BarberID)
	if !ok {
		return nil, httperr.ErrValidation("barber_not_found")
	}

	date := in.Date
	if date == "" {
		date = timezone.Today(uc.clock)
	}

	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	wh, open := uc.catalog.HoursFor(weekday)
	if !open {
		// dia fechado: sequência vazia, não é erro
		return []models.TimeSlot{}, nil
	}

	// Disponibilidade determinística: slot livre quando nenhum agendamento
	// não cancelado o ocupa e ele não invade o almoço.
	available := func(date string, hhmm string) bool {
		if uc.slots.BlockedByLunch(hhmm) {
			return false
		}
		return !uc.repo.IsSlotTaken(ctx, barber.ID, date, hhmm)
	}

	return schedule.Generate(date, uc.slots.DayHours(wh), available), nil
}
