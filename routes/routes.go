package routes

import (
	"net/http"
	"time"

	"tablebook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAgentRoutes registers the voice-agent conversation endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agent")
	{
		api.POST("/process", hb.Agent.ProcessTurn)
		api.POST("/update-preference", hb.Agent.UpdatePreference)
		api.POST("/create-booking", hb.Agent.CreateBooking)
		api.POST("/reset", hb.Agent.Reset)
		api.GET("/session/:id", hb.Agent.GetSession)
	}
}

// RegisterBookingRoutes registers the booking record endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.List)
		api.GET("/upcoming", hb.Booking.Upcoming)
		api.GET("/stats", hb.Booking.Stats)
		api.GET("/:id", hb.Booking.GetByID)
		api.POST("", hb.Booking.Create)
		api.PUT("/:id", hb.Booking.Update)
		api.PATCH("/:id/status", hb.Booking.UpdateStatus)
		api.DELETE("/:id", hb.Booking.Delete)
	}
}

// RegisterWeatherRoutes registers the weather lookup endpoints.
func RegisterWeatherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/weather")
	{
		api.GET("/current", hb.Weather.Current)
		api.GET("/forecast", hb.Weather.Forecast)
		api.POST("/recommendation", hb.Weather.Recommendation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Restaurant Booking API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAgentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})
}
