package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// Política de slots do dia
// ======================================================

// SlotPolicy reúne a granularidade e a janela de almoço aplicadas
// sobre o expediente semanal do catálogo.
type SlotPolicy struct {
	SlotMinutes int
	LunchStart  string // HH:mm, vazio desliga o intervalo
	LunchEnd    string
}

func (p SlotPolicy) DayHours(wh models.WorkingHours) schedule.DayHours {
	return schedule.DayHours{
		Open:        wh.StartTime,
		Close:       wh.EndTime,
		SlotMinutes: p.SlotMinutes,
	}
}

func (p SlotPolicy) BlockedByLunch(hhmm string) bool {
	if p.LunchStart == "" || p.LunchEnd == "" {
		return false
	}
	return schedule.Overlaps(hhmm, p.SlotMinutes, p.LunchStart, p.LunchEnd)
}

// ======================================================
// Helpers de data
// ======================================================

func weekdayOf(date string) (int, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_date")
	}
	return int(d.Weekday()), nil
}
