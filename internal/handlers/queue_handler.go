package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	domainQueue "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

// ======================================================
// HANDLER — fila de espera
// ======================================================

type QueueHandler struct {
	catalog           *catalog.Catalog
	listQueueUC       *ucAppointment.ListQueue
	statsUC           *ucAppointment.GetQueueStats
	callNextUC        *ucAppointment.CallNext
	simulateUC        *ucAppointment.SimulateCall
	settingsUC        *ucAppointment.QueueSettings
	avgServiceMinutes int
}

func NewQueueHandler(
	cat *catalog.Catalog,
	listQueueUC *ucAppointment.ListQueue,
	statsUC *ucAppointment.GetQueueStats,
	callNextUC *ucAppointment.CallNext,
	simulateUC *ucAppointment.SimulateCall,
	settingsUC *ucAppointment.QueueSettings,
	avgServiceMinutes int,
) *QueueHandler {
	return &QueueHandler{
		catalog:           cat,
		listQueueUC:       listQueueUC,
		statsUC:           statsUC,
		callNextUC:        callNextUC,
		simulateUC:        simulateUC,
		settingsUC:        settingsUC,
		avgServiceMinutes: avgServiceMinutes,
	}
}

// ======================================================
// DTOs
// ======================================================

type UpdateQueueSettingsRequest struct {
	Enabled *bool `json:"enabled"`
	MaxSize *int  `json:"max_size"`
}

// ======================================================
// LIST / STATS
// ======================================================

func (h *QueueHandler) List(c *gin.Context) {
	entries := h.listQueueUC.Execute(c.Request.Context())

	out := make([]dto.QueueEntryDTO, 0, len(entries))
	for _, ap := range entries {
		item := dto.QueueEntryDTO{
			Position:         ap.Position,
			ID:               ap.ID,
			Status:           ap.Status,
			ClientName:       ap.ClientName,
			EstimatedWaitMin: domainQueue.EstimatedWaitMin(ap.Position, h.avgServiceMinutes),
		}
		if svc, ok := h.catalog.GetService(ap.ServiceID); ok {
			item.ServiceName = svc.Name
		}
		out = append(out, item)
	}

	httpresp.List(c, out)
}

func (h *QueueHandler) Stats(c *gin.Context) {
	httpresp.OK(c, h.statsUC.Execute(c.Request.Context()))
}

// ======================================================
// CALL NEXT / SIMULATE
// ======================================================

func (h *QueueHandler) CallNext(c *gin.Context) {
	ap, ok := h.callNextUC.Execute(c.Request.Context())
	if !ok {
		// fila vazia é no-op, não erro
		httpresp.NoContent(c)
		return
	}

	httpresp.OK(c, ap)
}

func (h *QueueHandler) SimulateCall(c *gin.Context) {
	if !h.simulateUC.Execute(c.Request.Context()) {
		httpresp.NoContent(c)
		return
	}
	httpresp.OK(c, gin.H{"called": true})
}

// ======================================================
// SETTINGS
// ======================================================

func (h *QueueHandler) GetSettings(c *gin.Context) {
	httpresp.OK(c, h.settingsUC.Get(c.Request.Context()))
}

func (h *QueueHandler) UpdateSettings(c *gin.Context) {
	var req UpdateQueueSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	settings, err := h.settingsUC.Update(c.Request.Context(),
		ucAppointment.UpdateQueueSettingsInput{
			Enabled: req.Enabled,
			MaxSize: req.MaxSize,
		})
	if err != nil {
		if !httperr.Business(c, err) {
			httperr.Internal(c, "settings_error", "Erro ao atualizar a fila.")
		}
		return
	}

	httpresp.OK(c, settings)
}
