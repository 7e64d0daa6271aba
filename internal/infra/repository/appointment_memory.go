package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	domainQueue "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// Registro em memória (escritor único)
// ======================================================

// AppointmentMemoryRepository guarda os agendamentos na ordem de criação.
// Um único mutex serializa todas as mutações (regra do escritor único);
// leituras devolvem cópias, nunca referências ao estado interno.
type AppointmentMemoryRepository struct {
	mu sync.RWMutex

	appts []*models.Appointment
	byID  map[string]*models.Appointment

	settings models.QueueSettings
}

func NewAppointmentMemoryRepository(
	settings models.QueueSettings,
) *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		byID:     make(map[string]*models.Appointment),
		settings: settings,
	}
}

var _ domain.Repository = (*AppointmentMemoryRepository)(nil)

// ------------------------------------------------------
// Create
// ------------------------------------------------------

func (r *AppointmentMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Conflito e capacidade são conferidos antes de alocar qualquer coisa,
	// sob o mesmo lock da inserção.
	if r.slotTakenLocked(ap.BarberID, ap.Date, ap.Time) {
		return httperr.ErrValidation("slot_not_available")
	}

	queueLen := r.queueLenLocked()
	if r.settings.MaxSize > 0 && queueLen >= r.settings.MaxSize {
		return httperr.ErrQueueFull("queue_full")
	}

	ap.Position = queueLen + 1

	cp := *ap
	r.appts = append(r.appts, &cp)
	r.byID[cp.ID] = &cp

	return nil
}

// ------------------------------------------------------
// State change
// ------------------------------------------------------

func (r *AppointmentMemoryRepository) GetAppointment(
	_ context.Context,
	id string,
) (models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.byID[id]
	if !ok {
		return models.Appointment{}, httperr.ErrNotFound("appointment_not_found")
	}
	return *ap, nil
}

func (r *AppointmentMemoryRepository) TransitionAppointment(
	_ context.Context,
	id string,
	apply func(*models.Appointment) error,
) (models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.byID[id]
	if !ok {
		return models.Appointment{}, httperr.ErrNotFound("appointment_not_found")
	}

	if err := apply(ap); err != nil {
		return models.Appointment{}, err
	}

	r.rederiveLocked()

	return *ap, nil
}

// rederiveLocked reescreve as posições densas depois de cada mutação.
func (r *AppointmentMemoryRepository) rederiveLocked() {
	for _, entry := range domainQueue.Derive(r.appts) {
		r.byID[entry.ID].Position = entry.Position
	}
}

func (r *AppointmentMemoryRepository) queueLenLocked() int {
	n := 0
	for _, ap := range r.appts {
		if domain.InQueue(domain.Status(ap.Status)) {
			n++
		}
	}
	return n
}

// ------------------------------------------------------
// Fila
// ------------------------------------------------------

func (r *AppointmentMemoryRepository) ListQueue(
	_ context.Context,
) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domainQueue.Derive(r.appts)
}

func (r *AppointmentMemoryRepository) FirstInQueue(
	_ context.Context,
) (models.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	derived := domainQueue.Derive(r.appts)
	if len(derived) == 0 {
		return models.Appointment{}, false
	}
	return derived[0], true
}

// ------------------------------------------------------
// Disponibilidade / agenda
// ------------------------------------------------------

// IsSlotTaken: agendamento não cancelado ocupa o slot do barbeiro.
func (r *AppointmentMemoryRepository) IsSlotTaken(
	_ context.Context,
	barberID string,
	date string,
	hhmm string,
) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slotTakenLocked(barberID, date, hhmm)
}

func (r *AppointmentMemoryRepository) slotTakenLocked(
	barberID string,
	date string,
	hhmm string,
) bool {
	for _, ap := range r.appts {
		if ap.BarberID != barberID || ap.Date != date || ap.Time != hhmm {
			continue
		}
		if domain.Status(ap.Status) != domain.StatusCancelled {
			return true
		}
	}
	return false
}

func (r *AppointmentMemoryRepository) ListAppointmentsForDay(
	_ context.Context,
	date string,
) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range r.appts {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	return out
}

// ------------------------------------------------------
// Ajustes da fila
// ------------------------------------------------------

func (r *AppointmentMemoryRepository) GetQueueSettings(
	_ context.Context,
) models.QueueSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

func (r *AppointmentMemoryRepository) UpdateQueueSettings(
	_ context.Context,
	update func(*models.QueueSettings),
) models.QueueSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	update(&r.settings)
	return r.settings
}
