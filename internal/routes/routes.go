package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servibook/booking-api/internal/cache"
	"github.com/servibook/booking-api/internal/config"
	"github.com/servibook/booking-api/internal/handlers"
	infraRepo "github.com/servibook/booking-api/internal/infra/repository"
	"github.com/servibook/booking-api/internal/middleware"
	"github.com/servibook/booking-api/internal/notify"
	"github.com/servibook/booking-api/internal/storage"
	ucbooking "github.com/servibook/booking-api/internal/usecase/booking"
	"github.com/servibook/booking-api/internal/validators"
)

// Deps carries the process-wide collaborators. Tests swap in fakes for
// the notifier, cache, image store and email checker.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Notifier notify.Notifier
	Cache    cache.Cache
	Images   storage.ImageStore

	// Nil means live DNS lookups.
	EmailCheck validators.EmailDomainChecker
}

func Register(r *gin.Engine, d Deps) {
	if d.EmailCheck == nil {
		d.EmailCheck = validators.DNSEmailDomain
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	dispatcher := notify.NewDispatcher(d.Notifier)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucbooking.NewCreateBooking(bookingRepo, dispatcher)
	cancelBookingUC := ucbooking.NewCancelBooking(bookingRepo)
	availabilityUC := ucbooking.NewCheckAvailability(bookingRepo)
	updateStatusUC := ucbooking.NewUpdateBookingStatus(bookingRepo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg, d.EmailCheck)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Cache, d.Images)
	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		cancelBookingUC,
		availabilityUC,
	)
	adminHandler := handlers.NewAdminHandler(d.DB, updateStatusUC)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG + AVAILABILITY
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/bookings/check-availability", bookingHandler.CheckAvailability)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/my-bookings", bookingHandler.MyBookings)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/services", middleware.RequireAdmin(), serviceHandler.Create)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Cfg), middleware.RequireAdmin())
		{
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.PATCH("/bookings/:id/status", adminHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)

			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)

			admin.GET("/services/all", serviceHandler.ListAll)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Deactivate)
			admin.POST("/services/:id/image", serviceHandler.UploadImage)
		}
	}
}
