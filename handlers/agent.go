package handlers

import (
	"net/http"
	"time"

	"tablebook/models"
	"tablebook/services/agent"
	"tablebook/services/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler exposes the dialogue engine over HTTP and publishes realtime
// events around each turn.
type AgentHandler struct {
	Service agent.AgentService
	Events  realtime.Publisher
	Logger  *zap.Logger
}

func NewAgentHandler(service agent.AgentService, events realtime.Publisher, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{Service: service, Events: events, Logger: logger}
}

// ProcessTurn handles POST /api/agent/process.
func (h *AgentHandler) ProcessTurn(c *gin.Context) {
	var input struct {
		Text      string `json:"text"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Text input is required"})
		return
	}
	if input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Text input is required"})
		return
	}
	if input.SessionID == "" {
		input.SessionID = "default"
	}

	h.Events.Publish(c.Request.Context(), "agent-processing", gin.H{
		"sessionId": input.SessionID,
		"status":    "processing",
		"message":   "Agent is processing your request...",
	}, input.SessionID)

	result, err := h.Service.ProcessTurn(input.SessionID, input.Text)
	if err != nil {
		h.Events.Publish(c.Request.Context(), "agent-error", gin.H{
			"sessionId": input.SessionID,
			"error":     err.Error(),
		}, input.SessionID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process conversation",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "info-extracted", gin.H{
		"sessionId":     input.SessionID,
		"extractedInfo": result.Extracted,
	}, input.SessionID)
	h.Events.Publish(c.Request.Context(), "agent-response", gin.H{
		"sessionId":   input.SessionID,
		"response":    result.Response,
		"nextStep":    result.NextStep,
		"sessionData": result.SessionData,
	}, input.SessionID)
	h.Events.Publish(c.Request.Context(), "conversation-update", gin.H{
		"sessionId": input.SessionID,
		"step":      result.NextStep,
		"data":      result.SessionData,
	}, input.SessionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"response":       result.Response,
			"sessionData":    result.SessionData,
			"nextStep":       result.NextStep,
			"requiresAction": result.RequiredAction,
			"extractedInfo":  result.Extracted,
		},
	})
}

// UpdatePreference handles POST /api/agent/update-preference.
func (h *AgentHandler) UpdatePreference(c *gin.Context) {
	var input struct {
		SessionID         string `json:"sessionId"`
		SeatingPreference string `json:"seatingPreference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SessionID == "" || input.SeatingPreference == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Session ID and seating preference are required",
		})
		return
	}

	data, err := h.Service.UpdateSeatingPreference(input.SessionID, input.SeatingPreference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update seating preference",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "preference-updated", gin.H{
		"sessionId":         input.SessionID,
		"seatingPreference": input.SeatingPreference,
		"message":           "Seating preference set to: " + input.SeatingPreference,
	}, input.SessionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message":           "Seating preference updated successfully",
			"seatingPreference": input.SeatingPreference,
			"sessionData":       data,
		},
	})
}

// weatherPayload mirrors the weather data a frontend feeds back after a
// fetch_weather action.
type weatherPayload struct {
	Condition         string    `json:"condition"`
	Temperature       float64   `json:"temperature"`
	Description       string    `json:"description"`
	Humidity          int       `json:"humidity"`
	WindSpeed         float64   `json:"windSpeed"`
	Date              time.Time `json:"date"`
	SeatingPreference string    `json:"seatingPreference"`
}

// CreateBooking handles POST /api/agent/create-booking.
func (h *AgentHandler) CreateBooking(c *gin.Context) {
	var input struct {
		SessionID         string          `json:"sessionId"`
		WeatherData       *weatherPayload `json:"weatherData"`
		SeatingPreference string          `json:"seatingPreference"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid session"})
		return
	}

	finalize := agent.FinalizeInput{SeatingPreference: input.SeatingPreference}
	if input.WeatherData != nil {
		finalize.Weather = &models.WeatherInfo{
			Condition:   input.WeatherData.Condition,
			Temperature: input.WeatherData.Temperature,
			Description: input.WeatherData.Description,
			Humidity:    input.WeatherData.Humidity,
			WindSpeed:   input.WeatherData.WindSpeed,
			Date:        input.WeatherData.Date,
		}
		finalize.WeatherSeating = input.WeatherData.SeatingPreference
	}

	result, err := h.Service.CreateBookingFromSession(c.Request.Context(), input.SessionID, finalize)
	if err == agent.ErrUnknownSession || err == agent.ErrMissingInput {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid session"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create booking",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "voice-booking-created", gin.H{
		"sessionId": input.SessionID,
		"booking":   result.Booking,
		"message":   "Voice booking created: " + result.Booking.BookingID,
	}, "")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"booking":  result.Booking,
			"response": result.Response,
		},
	})
}

// Reset handles POST /api/agent/reset.
func (h *AgentHandler) Reset(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	_ = c.ShouldBindJSON(&input)

	if input.SessionID != "" && h.Service.ResetSession(input.SessionID) {
		h.Events.Publish(c.Request.Context(), "session-reset", gin.H{
			"sessionId": input.SessionID,
			"message":   "Conversation reset",
		}, input.SessionID)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session reset successfully"})
}

// GetSession handles GET /api/agent/session/:id.
func (h *AgentHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sess})
}
