package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceID string
	BarberID  string

	Date string // YYYY-MM-DD; vazio usa o dia de hoje
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog *catalog.Catalog
	notify  *notify.Emitter
	clock   timezone.Clock
	slots   SlotPolicy
}

func NewCreateAppointment(
	repo domain.Repository,
	cat *catalog.Catalog,
	emitter *notify.Emitter,
	clock timezone.Clock,
	slots SlotPolicy,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: cat,
		notify:  emitter,
		clock:   clock,
		slots:   slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (models.Appointment, error) {

	// --------------------------------------------------
	// 1. Cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	if name == "" {
		return models.Appointment{}, httperr.ErrValidation("client_name_required")
	}
	if phone == "" {
		return models.Appointment{}, httperr.ErrValidation("client_phone_required")
	}

	// --------------------------------------------------
	// 2. Serviço e barbeiro (catálogo)
	// --------------------------------------------------
	svc, ok := uc.catalog.GetService(in.ServiceID)
	if !ok {
		return models.Appointment{}, httperr.ErrValidation("service_not_found")
	}

	barber, ok := uc.catalog.GetBarber(in.BarberID)
	if !ok {
		return models.Appointment{}, httperr.ErrValidation("barber_not_found")
	}
	if !barber.Available {
		return models.Appointment{}, httperr.ErrValidation("barber_unavailable")
	}

	// --------------------------------------------------
	// 3. Data / hora dentro do expediente
	// --------------------------------------------------
	date := in.Date
	if date == "" {
		date = timezone.Today(uc.clock)
	}

	weekday, err := weekdayOf(date)
	if err != nil {
		return models.Appointment{}, err
	}

	wh, open := uc.catalog.HoursFor(weekday)
	if !open {
		return models.Appointment{}, httperr.ErrValidation("shop_closed")
	}

	hours := uc.slots.DayHours(wh)
	if !schedule.HasSlot(hours, in.Time) {
		return models.Appointment{}, httperr.ErrValidation("slot_not_available")
	}
	if uc.slots.BlockedByLunch(in.Time) {
		return models.Appointment{}, httperr.ErrValidation("slot_not_available")
	}

	// --------------------------------------------------
	// 4. Criação (conflito + capacidade no registro, atômico)
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  name,
		ClientPhone: phone,
		ServiceID:   svc.ID,
		BarberID:    barber.ID,
		Date:        date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return models.Appointment{}, err
	}

	// --------------------------------------------------
	// 5. Notificação (exatamente uma por mutação)
	// --------------------------------------------------
	uc.notify.Emit(notify.Event{
		Action:     notify.ActionCreated,
		ClientName: name,
	})

	return *ap, nil
}
