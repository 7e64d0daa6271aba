package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
)

// Sino do painel: últimas notificações, mais recente primeiro.
type NotificationHandler struct {
	emitter *notify.Emitter
}

func NewNotificationHandler(emitter *notify.Emitter) *NotificationHandler {
	return &NotificationHandler{emitter: emitter}
}

func (h *NotificationHandler) List(c *gin.Context) {
	httpresp.List(c, h.emitter.Snapshot())
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.emitter.Clear()
	httpresp.NoContent(c)
}
