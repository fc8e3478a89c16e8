package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barshopapp/barshop-api/internal/audit"
	"github.com/barshopapp/barshop-api/internal/config"
	"github.com/barshopapp/barshop-api/internal/handlers"
	infraRepo "github.com/barshopapp/barshop-api/internal/infra/repository"
	"github.com/barshopapp/barshop-api/internal/middleware"
	"github.com/barshopapp/barshop-api/internal/timezone"
	ucAppointment "github.com/barshopapp/barshop-api/internal/usecase/appointment"
	ucPayment "github.com/barshopapp/barshop-api/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	createBookingUC := ucAppointment.NewCreateBooking(appointmentRepo, auditDispatcher, loc)
	editAppointmentUC := ucAppointment.NewEditAppointment(appointmentRepo, auditDispatcher, loc)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, loc)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	recordPaymentUC := ucPayment.NewRecordPayment(paymentRepo, auditDispatcher, loc)
	statusMapUC := ucPayment.NewGetStatusMap(paymentRepo)
	collectionsUC := ucPayment.NewCollectionsReport(paymentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createBookingUC,
		editAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		loc,
	)

	paymentHandler := handlers.NewPaymentHandler(
		recordPaymentUC,
		statusMapUC,
		collectionsUC,
	)

	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher, loc)
	authHandler := handlers.NewAuthHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC: booking flow
		// ------------------------------
		api.GET("/appointments/available/:date", appointmentHandler.Available)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/settings", settingsHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/users/admin/initialize", authHandler.Initialize)
		api.POST("/users/admin/login", authHandler.Login)
		api.GET("/users/admin/status", authHandler.Status)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/appointments/:id/payment", paymentHandler.Record)
			secured.GET("/appointments/payments/status", paymentHandler.StatusMap)
			secured.GET("/appointments/reports/collections", paymentHandler.Collections)

			secured.PUT("/settings", settingsHandler.Update)
			secured.POST("/settings/off-date", settingsHandler.AddOffDate)
			secured.DELETE("/settings/off-date", settingsHandler.RemoveOffDate)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
