package appointment

import (
	"reflect"
	"testing"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

func TestListQueue_Idempotent(t *testing.T) {
	f := newFixture(10)
	f.mustBook(t, "Pedro Oliveira", "10:00")
	f.mustBook(t, "Lucas Ferreira", "10:30")

	first := f.listQueue.Execute(ctx)
	second := f.listQueue.Execute(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("consultar a fila não pode mudar a fila:\n%v\n%v", first, second)
	}
}

func TestCallNext_AnnouncesFirstWithoutStatusChange(t *testing.T) {
	f := newFixture(10)
	a := f.mustBook(t, "Pedro Oliveira", "10:00")
	f.mustBook(t, "Lucas Ferreira", "10:30")

	called, ok := f.callNext.Execute(ctx)
	if !ok {
		t.Fatal("expected a client to be called")
	}
	if called.ID != a.ID {
		t.Errorf("called = %s, want %s", called.ID, a.ID)
	}

	// chamar é anúncio: status e fila permanecem
	ap, err := f.repo.GetAppointment(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(domain.StatusPending) || ap.Position != 1 {
		t.Errorf("state changed: status=%s position=%d", ap.Status, ap.Position)
	}

	got := f.emitter.Snapshot()
	if got[0] != "Pedro Oliveira chamado para atendimento ✂️" {
		t.Errorf("notification = %q", got[0])
	}
}

func TestCallNext_EmptyQueueIsSilentNoOp(t *testing.T) {
	f := newFixture(10)

	_, ok := f.callNext.Execute(ctx)

	if ok {
		t.Error("empty queue must not call anyone")
	}
	if n := len(f.emitter.Snapshot()); n != 0 {
		t.Errorf("notifications = %d, want 0", n)
	}
}

func TestCallNext_SkipsTerminalAppointments(t *testing.T) {
	f := newFixture(10)
	a := f.mustBook(t, "Pedro Oliveira", "10:00")
	b := f.mustBook(t, "Lucas Ferreira", "10:30")

	if _, err := f.transition.Execute(ctx, a.ID, domain.ActionComplete); err != nil {
		t.Fatal(err)
	}

	called, ok := f.callNext.Execute(ctx)
	if !ok || called.ID != b.ID {
		t.Errorf("called = %v/%v, want %s/true", called.ID, ok, b.ID)
	}
}

func TestSimulateCall(t *testing.T) {
	f := newFixture(10)

	// fila vazia: no-op
	if f.simulate.Execute(ctx) {
		t.Error("empty queue should not simulate a call")
	}

	f.mustBook(t, "Pedro Oliveira", "10:00")
	f.emitter.Clear()

	if !f.simulate.Execute(ctx) {
		t.Fatal("expected simulated call")
	}
	if got := f.emitter.Snapshot()[0]; got != "Cliente chamado para atendimento" {
		t.Errorf("notification = %q", got)
	}

	// fila desativada: no-op mesmo com cliente esperando
	disabled := false
	if _, err := f.settings.Update(ctx, UpdateQueueSettingsInput{Enabled: &disabled}); err != nil {
		t.Fatal(err)
	}
	f.emitter.Clear()

	if f.simulate.Execute(ctx) {
		t.Error("disabled queue should not simulate a call")
	}
	if n := len(f.emitter.Snapshot()); n != 0 {
		t.Errorf("notifications = %d, want 0", n)
	}
}

func TestQueueStats(t *testing.T) {
	f := newFixture(10)
	f.mustBook(t, "Pedro Oliveira", "10:00")
	b := f.mustBook(t, "Lucas Ferreira", "10:30")
	c := f.mustBook(t, "Marcos Ribeiro", "11:00")

	if _, err := f.transition.Execute(ctx, b.ID, domain.ActionConfirm); err != nil {
		t.Fatal(err)
	}
	if _, err := f.transition.Execute(ctx, c.ID, domain.ActionCancel); err != nil {
		t.Fatal(err)
	}

	got := f.stats.Execute(ctx)

	if got.Pending != 1 {
		t.Errorf("pending = %d, want 1", got.Pending)
	}
	if got.InQueue != 2 {
		t.Errorf("in queue = %d, want 2", got.InQueue)
	}
	if got.MaxSize != 10 || !got.Enabled {
		t.Errorf("settings = max %d enabled %v", got.MaxSize, got.Enabled)
	}
	if got.AvgServiceMinutes != 15 {
		t.Errorf("avg = %d, want 15", got.AvgServiceMinutes)
	}
}

func TestQueueSettings_Update(t *testing.T) {
	f := newFixture(10)

	max := 3
	got, err := f.settings.Update(ctx, UpdateQueueSettingsInput{MaxSize: &max})
	if err != nil {
		t.Fatal(err)
	}
	if got.MaxSize != 3 || !got.Enabled {
		t.Errorf("settings = %+v", got)
	}

	bad := 0
	_, err = f.settings.Update(ctx, UpdateQueueSettingsInput{MaxSize: &bad})
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("err = %v, want validation_error", err)
	}

	// falha não aplicou nada
	if s := f.settings.Get(ctx); s.MaxSize != 3 {
		t.Errorf("max size = %d, want 3", s.MaxSize)
	}
}
