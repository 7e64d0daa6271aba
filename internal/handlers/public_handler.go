package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog        *catalog.Catalog
	createUC       *ucAppointment.CreateAppointment
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(
	cat *catalog.Catalog,
	createUC *ucAppointment.CreateAppointment,
	availabilityUC *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		catalog:        cat,
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required,brphone"`
	ServiceID   string `json:"service_id" binding:"required"`
	BarberID    string `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"` // vazio = hoje
	Time        string `json:"time" binding:"required,hhmm"`
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.catalog.ListServices())
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	httpresp.List(c, h.catalog.ListBarbers())
}

func (h *PublicHandler) GetShopInfo(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"shop":  h.catalog.Shop(),
		"hours": h.catalog.ListWorkingHours(),
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	if barberID == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro obrigatório.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(),
		ucAppointment.AvailabilityInput{
			BarberID: barberID,
			Date:     c.Query("date"),
		})
	if err != nil {
		if !httperr.Business(c, err) {
			httperr.Internal(c, "availability_error", "Erro ao listar horários.")
		}
		return
	}

	httpresp.List(c, slots)
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ServiceID:   req.ServiceID,
			BarberID:    req.BarberID,
			Date:        req.Date,
			Time:        req.Time,
		})
	if err != nil {
		if !httperr.Business(c, err) {
			httperr.Internal(c, "create_error", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}
