package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetServiceBookings is the handler for GET /v1/service-bookings
func (h *Handlers) GetServiceBookings(c *gin.Context) {
	bookings, err := h.Store.ListServiceBookings(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_bookings": bookings})
}

// CreateServiceBooking is the handler for POST /v1/service-bookings
// Every booking starts as pending.
func (h *Handlers) CreateServiceBooking(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.CreateServiceBookingInput
	if !h.bindJSON(c, &input) {
		return
	}

	// 2. --- Store Record ---
	booking, err := h.Store.CreateServiceBooking(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 3. --- Notify The Shop ---
	if h.Notifier != nil {
		h.Notifier.NotifyServiceBooking(booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Booking request received",
		"service_booking": booking,
	})
}
