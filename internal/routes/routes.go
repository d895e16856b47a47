package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/audit"
	"github.com/bellebook/salon-scheduler/internal/config"
	"github.com/bellebook/salon-scheduler/internal/handlers"
	infraRepo "github.com/bellebook/salon-scheduler/internal/infra/repository"
	"github.com/bellebook/salon-scheduler/internal/infra/reservation"
	"github.com/bellebook/salon-scheduler/internal/infra/storage"
	"github.com/bellebook/salon-scheduler/internal/middleware"
	"github.com/bellebook/salon-scheduler/internal/notify"
	ucBooking "github.com/bellebook/salon-scheduler/internal/usecase/booking"

	"github.com/go-redis/redis/v8"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	holdStore := reservation.NewRedisHoldStore(rdb)
	pictureStore := storage.NewProfilePictureStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	notifyDispatcher := notify.NewDispatcher(db)

	// ======================================================
	// USE CASES (BOOKING)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	reserveSlotUC := ucBooking.NewReserveSlot(bookingRepo, holdStore)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		holdStore,
		auditDispatcher,
	)

	decideAppointmentUC := ucBooking.NewDecideAppointment(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)
	listPendingUC := ucBooking.NewListPendingForStylist(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, pictureStore)
	categoryHandler := handlers.NewCategoryHandler(db)
	salonHandler := handlers.NewSalonHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, availabilityUC)
	timeBlockHandler := handlers.NewTimeBlockHandler(db, auditDispatcher)
	stylistHandler := handlers.NewStylistHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		reserveSlotUC,
		decideAppointmentUC,
		listAppointmentsUC,
		listPendingUC,
	)

	postHandler := handlers.NewPostHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/categories", categoryHandler.List)

		api.GET("/salons", salonHandler.List)
		api.GET("/salons/nearby", salonHandler.Nearby)
		api.GET("/salons/:id", salonHandler.Get)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/salon/:id", serviceHandler.ListBySalon)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/services/:id/availability", serviceHandler.Availability)

		api.GET("/stylists/salon/:id", stylistHandler.ListBySalon)

		api.GET("/posts", postHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/profile-picture/:id", authHandler.GetProfilePicture)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/profile-picture", authHandler.UploadProfilePicture)

			secured.POST("/salons/my-salon", salonHandler.CreateMySalon)
			secured.PATCH("/salons/my-salon", salonHandler.UpdateMySalon)
			secured.GET("/salons/my-salon/audit-logs", auditLogsHandler.List)

			secured.POST("/services/my-service", serviceHandler.CreateMyService)
			secured.POST("/services/my-service/time-block", timeBlockHandler.AddForMyService)
			secured.POST("/services/:id/time-blocks", timeBlockHandler.AddForService)

			secured.POST("/stylists/my-stylist", stylistHandler.CreateMyStylist)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments/reserve", appointmentHandler.Reserve)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/stylist/pending", appointmentHandler.ListPending)
			secured.PUT("/appointments/:id/decide", appointmentHandler.Decide)

			secured.GET("/notifications", notificationHandler.List)
			secured.PUT("/notifications/read", notificationHandler.MarkAllRead)

			secured.POST("/posts", postHandler.Create)
		}
	}
}
