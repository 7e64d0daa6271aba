package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	infraRepo "github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// 2025-01-02 é uma quinta-feira: expediente 09:00-20:00.
const testDate = "2025-01-02"

var ctx = context.Background()

type fixture struct {
	repo    *infraRepo.AppointmentMemoryRepository
	catalog *catalog.Catalog
	emitter *notify.Emitter
	clock   timezone.FixedClock

	create       *CreateAppointment
	transition   *TransitionAppointment
	availability *GetAvailability
	listQueue    *ListQueue
	callNext     *CallNext
	simulate     *SimulateCall
	settings     *QueueSettings
	stats        *GetQueueStats
	byDate       *ListAppointmentsByDate
}

func newFixture(maxQueue int) *fixture {
	cat := catalog.Seed()
	emitter := notify.NewEmitter(notify.DefaultCapacity)
	clock := timezone.FixedClock{
		Time: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
	}

	repo := infraRepo.NewAppointmentMemoryRepository(models.QueueSettings{
		Enabled: true,
		MaxSize: maxQueue,
	})

	slots := SlotPolicy{
		SlotMinutes: 30,
		LunchStart:  "12:00",
		LunchEnd:    "13:00",
	}

	return &fixture{
		repo:    repo,
		catalog: cat,
		emitter: emitter,
		clock:   clock,

		create:       NewCreateAppointment(repo, cat, emitter, clock, slots),
		transition:   NewTransitionAppointment(repo, emitter, clock),
		availability: NewGetAvailability(repo, cat, clock, slots),
		listQueue:    NewListQueue(repo),
		callNext:     NewCallNext(repo, emitter),
		simulate:     NewSimulateCall(repo, emitter),
		settings:     NewQueueSettings(repo),
		stats:        NewGetQueueStats(repo, 15),
		byDate:       NewListAppointmentsByDate(repo, clock),
	}
}

func (f *fixture) book(name, hhmm string) (models.Appointment, error) {
	return f.create.Execute(ctx, CreateAppointmentInput{
		ClientName:  name,
		ClientPhone: "(11) 99999-1234",
		ServiceID:   "1",
		BarberID:    "1",
		Date:        testDate,
		Time:        hhmm,
	})
}

func (f *fixture) mustBook(t *testing.T, name, hhmm string) models.Appointment {
	t.Helper()

	ap, err := f.book(name, hhmm)
	if err != nil {
		t.Fatalf("book %s %s: %v", name, hhmm, err)
	}
	return ap
}
