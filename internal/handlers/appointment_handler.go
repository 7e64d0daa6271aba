package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agenda do painel
// ======================================================

type AppointmentHandler struct {
	catalog      *catalog.Catalog
	transitionUC *ucAppointment.TransitionAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	cat *catalog.Catalog,
	transitionUC *ucAppointment.TransitionAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		catalog:      cat,
		transitionUC: transitionUC,
		listByDateUC: listByDateUC,
	}
}

// ======================================================
// LIST (agenda do dia)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	appts, err := h.listByDateUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if !httperr.Business(c, err) {
			httperr.Internal(c, "list_error", "Erro ao listar agendamentos.")
		}
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(appts))
	for _, ap := range appts {
		out = append(out, h.toListDTO(ap))
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	item := dto.AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		Position:    ap.Position,
		ClientName:  ap.ClientName,
		ClientPhone: ap.ClientPhone,
	}

	if svc, ok := h.catalog.GetService(ap.ServiceID); ok {
		item.ServiceName = svc.Name
		item.ServiceDurationMin = svc.DurationMin
	}
	if barber, ok := h.catalog.GetBarber(ap.BarberID); ok {
		item.BarberName = barber.Name
	}

	return item
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.ActionConfirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.ActionCancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.ActionComplete)
}

func (h *AppointmentHandler) transition(c *gin.Context, action domain.Action) {
	ap, err := h.transitionUC.Execute(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		if !httperr.Business(c, err) {
			httperr.Internal(c, "transition_error", "Erro ao atualizar agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}
