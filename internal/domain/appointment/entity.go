package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionConfirm, ActionCancel, ActionComplete:
		return Action(raw), nil
	default:
		return "", httperr.ErrValidation("invalid_action")
	}
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.Position = 0
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.Position = 0
	return nil
}

// Apply despacha a ação sobre a entidade. Falha deixa a entidade intacta.
func Apply(ap *models.Appointment, action Action, now time.Time) error {
	switch action {
	case ActionConfirm:
		return Confirm(ap, now)
	case ActionCancel:
		return Cancel(ap, now)
	case ActionComplete:
		return Complete(ap, now)
	default:
		return httperr.ErrValidation("invalid_action")
	}
}
