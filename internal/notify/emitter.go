package notify

import "sync"

// ======================================================
// Notificações do painel
// ======================================================

const DefaultCapacity = 5

// Ações que o core notifica. Toda operação que muda estado emite
// exatamente um evento.
const (
	ActionCreated   = "appointment_created"
	ActionConfirmed = "appointment_confirmed"
	ActionCancelled = "appointment_cancelled"
	ActionCompleted = "appointment_completed"
	ActionCalled    = "queue_called"
	ActionSimulated = "queue_call_simulated"
)

type Event struct {
	Action     string
	ClientName string
}

// Message é o texto exibido no sino do painel.
func (ev Event) Message() string {
	switch ev.Action {
	case ActionCreated:
		return "Novo agendamento recebido"
	case ActionConfirmed:
		return "Agendamento confirmado"
	case ActionCancelled:
		return "Agendamento cancelado"
	case ActionCompleted:
		return "Agendamento concluído"
	case ActionCalled:
		return ev.ClientName + " chamado para atendimento ✂️"
	case ActionSimulated:
		return "Cliente chamado para atendimento"
	}
	return ev.Action
}

// Emitter guarda as últimas N notificações, mais recente primeiro.
// O mutex serializa os appends: nenhum evento se perde nem duplica,
// mesmo com emissores concorrentes.
type Emitter struct {
	mu       sync.Mutex
	capacity int
	events   []string
}

func NewEmitter(capacity int) *Emitter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Emitter{capacity: capacity}
}

func (e *Emitter) Emit(ev Event) {
	msg := ev.Message()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.events = append(e.events, "")
	copy(e.events[1:], e.events)
	e.events[0] = msg

	if len(e.events) > e.capacity {
		e.events = e.events[:e.capacity]
	}
}

// Snapshot devolve uma cópia, mais recente primeiro.
func (e *Emitter) Snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.events))
	copy(out, e.events)
	return out
}

// Clear é da camada externa (o painel limpa o sino); o core só acrescenta.
func (e *Emitter) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = e.events[:0]
}
