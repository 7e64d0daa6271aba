package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	cat := catalog.Seed()
	clock := timezone.NewClock(cfg.ShopTimezone)
	emitter := notify.NewEmitter(cfg.NotificationCap)

	repo := infraRepo.NewAppointmentMemoryRepository(models.QueueSettings{
		Enabled: cfg.QueueEnabled,
		MaxSize: cfg.MaxQueueSize,
	})

	slots := ucAppointment.SlotPolicy{
		SlotMinutes: cfg.SlotMinutes,
		LunchStart:  cfg.LunchStart,
		LunchEnd:    cfg.LunchEnd,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(repo, cat, emitter, clock, slots)
	transitionUC := ucAppointment.NewTransitionAppointment(repo, emitter, clock)
	availabilityUC := ucAppointment.NewGetAvailability(repo, cat, clock, slots)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo, clock)

	listQueueUC := ucAppointment.NewListQueue(repo)
	statsUC := ucAppointment.NewGetQueueStats(repo, cfg.AvgServiceMinutes)
	callNextUC := ucAppointment.NewCallNext(repo, emitter)
	simulateUC := ucAppointment.NewSimulateCall(repo, emitter)
	settingsUC := ucAppointment.NewQueueSettings(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(cat, createUC, availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(cat, transitionUC, listByDateUC)
	queueHandler := handlers.NewQueueHandler(
		cat,
		listQueueUC,
		statsUC,
		callNextUC,
		simulateUC,
		settingsUC,
		cfg.AvgServiceMinutes,
	)
	notificationHandler := handlers.NewNotificationHandler(emitter)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (site)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shop", publicHandler.GetShopInfo)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// PAINEL (console de demonstração, sem login)
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			admin.GET("/queue", queueHandler.List)
			admin.GET("/queue/stats", queueHandler.Stats)
			admin.POST("/queue/call-next", queueHandler.CallNext)
			admin.POST("/queue/simulate-call", queueHandler.SimulateCall)
			admin.GET("/queue/settings", queueHandler.GetSettings)
			admin.PUT("/queue/settings", queueHandler.UpdateSettings)

			admin.GET("/notifications", notificationHandler.List)
			admin.DELETE("/notifications", notificationHandler.Clear)
		}
	}
}
