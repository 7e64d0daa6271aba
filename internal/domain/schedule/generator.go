package schedule

import (
	"fmt"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// Gerador de slots
// ======================================================

const DefaultSlotMinutes = 30

// DayHours é a janela de expediente de um dia: [Open, Close).
type DayHours struct {
	Open        string // HH:mm
	Close       string // HH:mm
	SlotMinutes int    // granularidade; 0 usa o default
}

// AvailabilityFn decide a disponibilidade de um slot. A política vem do
// chamador (agendamentos existentes, almoço); o gerador não conhece o registro.
type AvailabilityFn func(date string, hhmm string) bool

// Generate produz os slots do dia em ordem crescente, sem buracos além da
// granularidade. Open >= Close gera sequência vazia. Slot final parcial
// (granularidade que não divide a janela) é descartado.
func Generate(date string, hours DayHours, available AvailabilityFn) []models.TimeSlot {
	open, okOpen := minutesOfDay(hours.Open)
	close, okClose := minutesOfDay(hours.Close)
	if !okOpen || !okClose || open >= close {
		return []models.TimeSlot{}
	}

	gran := hours.SlotMinutes
	if gran <= 0 {
		gran = DefaultSlotMinutes
	}

	slots := make([]models.TimeSlot, 0, (close-open)/gran)
	for cur := open; cur+gran <= close; cur += gran {
		t := label(cur)

		free := true
		if available != nil {
			free = available(date, t)
		}

		slots = append(slots, models.TimeSlot{Time: t, Available: free})
	}

	return slots
}

// HasSlot informa se hhmm é o início de um slot gerado para a janela.
func HasSlot(hours DayHours, hhmm string) bool {
	open, okOpen := minutesOfDay(hours.Open)
	close, okClose := minutesOfDay(hours.Close)
	m, okM := minutesOfDay(hhmm)
	if !okOpen || !okClose || !okM {
		return false
	}

	gran := hours.SlotMinutes
	if gran <= 0 {
		gran = DefaultSlotMinutes
	}

	return m >= open && m+gran <= close && (m-open)%gran == 0
}

// Overlaps informa se o slot que começa em hhmm invade a janela [from, to).
// Mesma regra de sobreposição usada para o intervalo de almoço.
func Overlaps(hhmm string, slotMinutes int, from, to string) bool {
	start, okStart := minutesOfDay(hhmm)
	wFrom, okFrom := minutesOfDay(from)
	wTo, okTo := minutesOfDay(to)
	if !okStart || !okFrom || !okTo || wFrom >= wTo {
		return false
	}

	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	end := start + slotMinutes

	return start < wTo && end > wFrom
}

func minutesOfDay(hhmm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func label(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
