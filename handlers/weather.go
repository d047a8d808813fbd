package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tablebook/services/realtime"
	"tablebook/services/weather"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WeatherHandler exposes weather lookups and seating recommendations.
type WeatherHandler struct {
	Service weather.WeatherService
	Events  realtime.Publisher
	Logger  *zap.Logger
}

func NewWeatherHandler(service weather.WeatherService, events realtime.Publisher, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{Service: service, Events: events, Logger: logger}
}

func locationFromQuery(c *gin.Context) weather.Location {
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lon, _ := strconv.ParseFloat(c.Query("lon"), 64)
	return weather.Location{City: c.Query("city"), Lat: lat, Lon: lon}
}

// Current handles GET /api/weather/current.
func (h *WeatherHandler) Current(c *gin.Context) {
	current, err := h.Service.Current(c.Request.Context(), locationFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch current weather",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "weather-current", gin.H{
		"weather": current,
		"message": "Current weather updated",
	}, "")

	c.JSON(http.StatusOK, gin.H{"success": true, "data": current})
}

// Forecast handles GET /api/weather/forecast.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Date is required"})
		return
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	forecast, err := h.Service.Forecast(c.Request.Context(), date, locationFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch weather forecast",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "weather-forecast", gin.H{
		"weather":   forecast,
		"isClosest": !forecast.ExactMatch,
	}, "")

	response := gin.H{"success": true, "data": forecast}
	if !forecast.ExactMatch {
		response["message"] = "Closest forecast used"
	}
	c.JSON(http.StatusOK, response)
}

// Recommendation handles POST /api/weather/recommendation: the weather-based
// seating suggestion the agent's caller fetches between turns. Failures fall
// back to "no preference" rather than aborting the conversation.
func (h *WeatherHandler) Recommendation(c *gin.Context) {
	var input struct {
		Date      string  `json:"date"`
		City      string  `json:"city"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		SessionID string  `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Date is required"})
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	h.Events.Publish(c.Request.Context(), "weather-fetching", gin.H{
		"sessionId": input.SessionID,
		"message":   "Checking weather...",
	}, input.SessionID)

	loc := weather.Location{City: input.City, Lat: input.Lat, Lon: input.Lon}
	forecast, err := h.Service.Forecast(c.Request.Context(), date, loc)
	if err != nil {
		h.Logger.Warn("weather recommendation failed", zap.Error(err))
		h.Events.Publish(c.Request.Context(), "weather-error", gin.H{
			"sessionId": input.SessionID,
			"error":     err.Error(),
		}, "")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to get recommendation",
			"message": err.Error(),
			"fallback": gin.H{
				"voiceMessage":      "Unable to fetch weather data. Please choose seating manually.",
				"seatingPreference": "no preference",
				"weatherInfo":       nil,
				"isSuggestion":      true,
			},
		})
		return
	}

	weatherInfo := gin.H{
		"condition":   forecast.Condition,
		"temperature": forecast.Temperature,
		"description": forecast.Description,
		"humidity":    forecast.Humidity,
		"windSpeed":   forecast.WindSpeed,
		"date":        forecast.Date,
	}

	h.Events.Publish(c.Request.Context(), "weather-recommendation", gin.H{
		"sessionId":         input.SessionID,
		"weather":           weatherInfo,
		"seatingPreference": forecast.SuggestedSeating,
		"message":           forecast.Recommendation,
		"isSuggestion":      true,
	}, input.SessionID)
	h.Events.Publish(c.Request.Context(), "seating-suggestion", gin.H{
		"sessionId":         input.SessionID,
		"seatingPreference": forecast.SuggestedSeating,
		"reason":            forecast.Recommendation,
		"isSuggestion":      true,
	}, input.SessionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"weatherInfo":       weatherInfo,
			"seatingPreference": forecast.SuggestedSeating,
			"voiceMessage":      forecast.Recommendation,
			"isSuggestion":      true,
			"note":              "This is a weather-based suggestion",
		},
	})
}
