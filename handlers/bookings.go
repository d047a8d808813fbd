package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"
	"tablebook/services/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes CRUD and reporting endpoints over the booking
// records.
type BookingHandler struct {
	Repo   bookingRepo.BookingRepository
	Events realtime.Publisher
	Logger *zap.Logger
}

func NewBookingHandler(repo bookingRepo.BookingRepository, events realtime.Publisher, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Events: events, Logger: logger}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	filter := bookingRepo.ListFilter{
		Status:  c.Query("status"),
		Cuisine: c.Query("cuisine"),
		Date:    c.Query("date"),
		Limit:   limit,
		Page:    page,
	}

	bookings, total, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch bookings",
			"message": err.Error(),
		})
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(bookings),
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
		"data":       bookings,
	})
}

// Upcoming handles GET /api/bookings/upcoming.
func (h *BookingHandler) Upcoming(c *gin.Context) {
	bookings, err := h.Repo.Upcoming(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch upcoming bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch upcoming bookings",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(bookings), "data": bookings})
}

// Stats handles GET /api/bookings/stats.
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.Repo.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch statistics",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// GetByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err == bookingRepo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch booking",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}
	if details := input.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": details,
		})
		return
	}

	booking, err := input.ToBooking()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": []string{err.Error()}})
		return
	}

	created, err := h.Repo.Create(c.Request.Context(), booking)
	if err != nil {
		h.Logger.Error("failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create booking",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "booking-created", gin.H{
		"booking": created,
		"message": "New booking created: " + created.BookingID,
	}, "")
	h.publishStats(c)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    created,
	})
}

// allowed fields for PUT updates.
var allowedUpdateFields = map[string]string{
	"numberOfGuests":    "number_of_guests",
	"bookingTime":       "booking_time",
	"cuisinePreference": "cuisine_preference",
	"specialRequests":   "special_requests",
	"seatingPreference": "seating_preference",
	"contactPhone":      "contact_phone",
	"contactEmail":      "contact_email",
	"notes":             "notes",
	"status":            "status",
}

// Update handles PUT /api/bookings/:id.
func (h *BookingHandler) Update(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	for key, column := range allowedUpdateFields {
		if v, ok := input[key]; ok {
			fields[column] = v
		}
	}

	booking, err := h.Repo.UpdateFields(c.Request.Context(), c.Param("id"), fields)
	if err == bookingRepo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update booking",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "booking-updated", gin.H{
		"booking": booking,
		"changes": input,
		"message": "Booking " + booking.BookingID + " updated",
	}, "")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    booking,
	})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	valid := []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted}
	if !contains(valid, input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid status. Use: pending, confirmed, cancelled, or completed",
		})
		return
	}

	booking, err := h.Repo.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err == bookingRepo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update booking status",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "booking-status-changed", gin.H{
		"bookingId": booking.BookingID,
		"newStatus": input.Status,
		"booking":   booking,
		"message":   "Booking " + booking.BookingID + " status changed to " + input.Status,
	}, "")
	h.publishStats(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking " + input.Status + " successfully",
		"data":    booking,
	})
}

// Delete handles DELETE /api/bookings/:id. Deletion is a soft cancel.
func (h *BookingHandler) Delete(c *gin.Context) {
	booking, err := h.Repo.Cancel(c.Request.Context(), c.Param("id"))
	if err == bookingRepo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to cancel booking",
			"message": err.Error(),
		})
		return
	}

	h.Events.Publish(c.Request.Context(), "booking-cancelled", gin.H{
		"booking": booking,
		"message": "Booking " + booking.BookingID + " cancelled",
	}, "")
	h.publishStats(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
		"data":    booking,
	})
}

func (h *BookingHandler) publishStats(c *gin.Context) {
	stats, err := h.Repo.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to compute stats for event", zap.Error(err))
		return
	}
	h.Events.Publish(c.Request.Context(), "stats-update", stats, "")
}
