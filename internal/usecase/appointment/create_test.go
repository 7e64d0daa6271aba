package appointment

import (
	"testing"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

func TestCreate_Success(t *testing.T) {
	f := newFixture(10)

	ap := f.mustBook(t, "Pedro Oliveira", "10:00")

	if ap.ID == "" {
		t.Error("expected allocated id")
	}
	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending", ap.Status)
	}
	if ap.Position != 1 {
		t.Errorf("position = %d, want 1", ap.Position)
	}
	if ap.Date != testDate || ap.Time != "10:00" {
		t.Errorf("slot = %s %s", ap.Date, ap.Time)
	}

	second := f.mustBook(t, "Lucas Ferreira", "10:30")
	if second.Position != 2 {
		t.Errorf("second position = %d, want 2", second.Position)
	}
	if second.ID == ap.ID {
		t.Error("ids must be unique")
	}
}

func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		in   CreateAppointmentInput
	}{
		{
			name: "empty client name",
			in:   CreateAppointmentInput{ClientName: "  ", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: testDate, Time: "10:00"},
		},
		{
			name: "empty client phone",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "", ServiceID: "1", BarberID: "1", Date: testDate, Time: "10:00"},
		},
		{
			name: "unknown service",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "99", BarberID: "1", Date: testDate, Time: "10:00"},
		},
		{
			name: "unknown barber",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "99", Date: testDate, Time: "10:00"},
		},
		{
			name: "unavailable barber",
			// André Costa está com available = false no catálogo
			in: CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "3", Date: testDate, Time: "10:00"},
		},
		{
			name: "time before opening",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: testDate, Time: "08:00"},
		},
		{
			name: "time off the grid",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: testDate, Time: "09:15"},
		},
		{
			name: "lunch window",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: testDate, Time: "12:00"},
		},
		{
			name: "sunday closed",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: "2025-01-05", Time: "10:00"},
		},
		{
			name: "malformed date",
			in:   CreateAppointmentInput{ClientName: "Pedro", ClientPhone: "(11) 99999-1234", ServiceID: "1", BarberID: "1", Date: "02/01/2025", Time: "10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(10)

			_, err := f.create.Execute(ctx, tt.in)

			if !httperr.IsKind(err, httperr.KindValidation) {
				t.Errorf("err = %v, want validation_error", err)
			}

			// falha não muta estado nem emite notificação
			if n := len(f.listQueue.Execute(ctx)); n != 0 {
				t.Errorf("queue len = %d after failed create", n)
			}
			if n := len(f.emitter.Snapshot()); n != 0 {
				t.Errorf("notifications = %d after failed create", n)
			}
		})
	}
}

func TestCreate_SlotAlreadyTaken(t *testing.T) {
	f := newFixture(10)
	f.mustBook(t, "Pedro Oliveira", "10:00")

	_, err := f.book("Lucas Ferreira", "10:00")

	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("err = %v, want validation_error", err)
	}
}

func TestCreate_QueueFull(t *testing.T) {
	f := newFixture(2)
	f.mustBook(t, "Pedro Oliveira", "10:00")
	f.mustBook(t, "Lucas Ferreira", "10:30")

	_, err := f.book("Marcos Ribeiro", "11:00")

	if !httperr.IsKind(err, httperr.KindQueueFull) {
		t.Fatalf("err = %v, want queue_full", err)
	}
	if n := len(f.listQueue.Execute(ctx)); n != 2 {
		t.Errorf("queue len = %d, want 2", n)
	}
}

func TestCreate_EmitsOneNotification(t *testing.T) {
	f := newFixture(10)

	f.mustBook(t, "Pedro Oliveira", "10:00")

	got := f.emitter.Snapshot()
	if len(got) != 1 {
		t.Fatalf("notifications = %d, want 1", len(got))
	}
	if got[0] != "Novo agendamento recebido" {
		t.Errorf("message = %q", got[0])
	}
}

func TestCreate_DefaultsToToday(t *testing.T) {
	f := newFixture(10)

	ap, err := f.create.Execute(ctx, CreateAppointmentInput{
		ClientName:  "Pedro Oliveira",
		ClientPhone: "(11) 99999-1234",
		ServiceID:   "1",
		BarberID:    "1",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	// o relógio fixo aponta para 2025-01-02
	if ap.Date != testDate {
		t.Errorf("date = %s, want %s", ap.Date, testDate)
	}
}
