package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"sparkle/internal/handler"
	"sparkle/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	QuoteHandler    *handler.QuoteHandler
	WizardHandler   *handler.WizardHandler
	BookingHandler  *handler.BookingHandler
	CleanerHandler  *handler.CleanerHandler
	CustomerHandler *handler.CustomerHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Quote and scheduling routes.
		v1.POST("/quote", deps.QuoteHandler.Quote)
		v1.GET("/slots", deps.QuoteHandler.Slots)

		// Wizard routes: one booking session per client.
		wizard := v1.Group("/wizard/:session")
		{
			wizard.GET("", deps.WizardHandler.GetState)
			wizard.GET("/resume", deps.WizardHandler.Resume)
			wizard.POST("/mount", deps.WizardHandler.Mount)
			wizard.PATCH("/field", deps.WizardHandler.UpdateField)
			wizard.POST("/reset", deps.WizardHandler.Reset)
			wizard.POST("/submit", deps.WizardHandler.Submit)
		}

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.CreateBooking)
			bookings.GET("", deps.BookingHandler.GetAll)
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
			bookings.GET("/:id/earnings", deps.BookingHandler.Earnings)
			bookings.POST("/:id/confirm", deps.BookingHandler.Confirm)
			bookings.POST("/:id/assign", deps.BookingHandler.Assign)
			bookings.POST("/:id/complete", deps.BookingHandler.Complete)
			bookings.POST("/:id/cancel", deps.BookingHandler.Cancel)
		}

		// Cleaner routes.
		cleaners := v1.Group("/cleaners")
		{
			cleaners.POST("/register", deps.CleanerHandler.Register)
			cleaners.GET("", deps.CleanerHandler.GetAll)
			cleaners.GET("/:id", deps.CleanerHandler.GetCleaner)
			cleaners.GET("/:id/payouts", deps.CleanerHandler.Payouts)
		}

		// Customer routes.
		customers := v1.Group("/customers")
		{
			customers.POST("/register", deps.CustomerHandler.Register)
			customers.GET("", deps.CustomerHandler.GetAll)
		}
	}

	return router
}
