package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"garagehub/handlers"
	"garagehub/middleware"
	"garagehub/utils"
)

// Handlers groups the endpoint handlers wired in main.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Garage      *handlers.GarageHandler
	Reservation *handlers.ReservationHandler
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", h.Auth.RegisterHandler)
		api.POST("/login", h.Auth.LoginHandler)
		api.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.MeHandler)
	}
}

// RegisterGarageRoutes registers the garage directory and slot calendar
// endpoints. Availability reads and writes stay public the way the original
// owner flow calls them; directory mutations require authentication.
func RegisterGarageRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/garages")
	{
		api.POST("/:garageId/setAvailability", h.Garage.SetAvailabilityHandler)
		api.GET("/:garageId/availableSlots", h.Garage.AvailableSlotsHandler)

		// Protected routes (require authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/create", h.Garage.CreateGarageHandler)
		protected.GET("", h.Garage.ListGaragesHandler)
		protected.GET("/mygarages", h.Garage.MyGaragesHandler)
		protected.GET("/:garageId", h.Garage.GetGarageHandler)
		protected.GET("/:garageId/reservations", h.Garage.GarageReservationsHandler)
	}
}

// RegisterReservationRoutes registers the renter-facing booking endpoints.
func RegisterReservationRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/reservations")
	{
		api.POST("/create", h.Reservation.CreateReservationHandler)
		api.GET("/availableSlots/:garageId", h.Reservation.AvailableSlotsHandler)
		api.GET("/userReservations/:userId", h.Reservation.UserReservationsHandler)
		api.POST("/:id/cancel", h.Reservation.CancelReservationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, h)
	RegisterGarageRoutes(r, h)
	RegisterReservationRoutes(r, h)
	RegisterHealthRoute(r)
}
