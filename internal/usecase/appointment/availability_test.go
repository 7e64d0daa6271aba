package appointment

import (
	"testing"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func slotFor(t *testing.T, slots []models.TimeSlot, hhmm string) models.TimeSlot {
	t.Helper()

	for _, s := range slots {
		if s.Time == hhmm {
			return s
		}
	}
	t.Fatalf("slot %s not in grid", hhmm)
	return models.TimeSlot{}
}

func TestAvailability_FullDayGrid(t *testing.T) {
	f := newFixture(10)

	slots, err := f.availability.Execute(ctx, AvailabilityInput{
		BarberID: "1",
		Date:     testDate,
	})
	if err != nil {
		t.Fatal(err)
	}

	// quinta-feira 09:00-20:00 com granularidade de 30 min
	if len(slots) != 22 {
		t.Fatalf("slots = %d, want 22", len(slots))
	}
	if slots[0].Time != "09:00" || slots[len(slots)-1].Time != "19:30" {
		t.Errorf("bounds = %s..%s", slots[0].Time, slots[len(slots)-1].Time)
	}

	// janela de almoço bloqueada, resto livre
	for _, s := range slots {
		wantFree := s.Time != "12:00" && s.Time != "12:30"
		if s.Available != wantFree {
			t.Errorf("%s available = %v, want %v", s.Time, s.Available, wantFree)
		}
	}
}

func TestAvailability_BookedSlotOnlyBlocksThatBarber(t *testing.T) {
	f := newFixture(10)
	f.mustBook(t, "Pedro Oliveira", "10:00") // barbeiro 1

	one, err := f.availability.Execute(ctx, AvailabilityInput{BarberID: "1", Date: testDate})
	if err != nil {
		t.Fatal(err)
	}
	if slotFor(t, one, "10:00").Available {
		t.Error("10:00 should be taken for barber 1")
	}
	if !slotFor(t, one, "10:30").Available {
		t.Error("10:30 should still be free for barber 1")
	}

	two, err := f.availability.Execute(ctx, AvailabilityInput{BarberID: "2", Date: testDate})
	if err != nil {
		t.Fatal(err)
	}
	if !slotFor(t, two, "10:00").Available {
		t.Error("10:00 should be free for barber 2")
	}
}

func TestAvailability_CancelledAppointmentFreesSlot(t *testing.T) {
	f := newFixture(10)
	ap := f.mustBook(t, "Pedro Oliveira", "10:00")

	if _, err := f.transition.Execute(ctx, ap.ID, domain.ActionCancel); err != nil {
		t.Fatal(err)
	}

	slots, err := f.availability.Execute(ctx, AvailabilityInput{BarberID: "1", Date: testDate})
	if err != nil {
		t.Fatal(err)
	}
	if !slotFor(t, slots, "10:00").Available {
		t.Error("cancelled appointment should free the slot")
	}
}

func TestAvailability_ClosedDayIsEmpty(t *testing.T) {
	f := newFixture(10)

	// 2025-01-05 é domingo
	slots, err := f.availability.Execute(ctx, AvailabilityInput{
		BarberID: "1",
		Date:     "2025-01-05",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("slots = %d, want 0", len(slots))
	}
}

func TestAvailability_SaturdayShorterGrid(t *testing.T) {
	f := newFixture(10)

	// 2025-01-04 é sábado: 09:00-18:00
	slots, err := f.availability.Execute(ctx, AvailabilityInput{
		BarberID: "1",
		Date:     "2025-01-04",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 18 {
		t.Fatalf("slots = %d, want 18", len(slots))
	}
	if slots[len(slots)-1].Time != "17:30" {
		t.Errorf("last = %s, want 17:30", slots[len(slots)-1].Time)
	}
}

func TestAvailability_UnknownBarber(t *testing.T) {
	f := newFixture(10)

	_, err := f.availability.Execute(ctx, AvailabilityInput{BarberID: "99", Date: testDate})

	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("err = %v, want validation_error", err)
	}
}

func TestAvailability_MalformedDate(t *testing.T) {
	f := newFixture(10)

	_, err := f.availability.Execute(ctx, AvailabilityInput{BarberID: "1", Date: "hoje"})

	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("err = %v, want validation_error", err)
	}
}
