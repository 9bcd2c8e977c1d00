package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingBody(name string) gin.H {
	return gin.H{
		"customer_name":  name,
		"customer_email": "driver@example.com",
		"customer_phone": "0400 111 222",
		"service_type":   "Logbook service",
		"preferred_date": "2025-07-14T00:00:00Z",
		"preferred_time": "10:00",
	}
}

func TestCreateServiceBooking(t *testing.T) {
	h, notifier := newTestHandlers(t)
	r := newTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/service-bookings", bookingBody("Kim"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ServiceBooking models.ServiceBooking `json:"service_booking"`
	}
	decode(t, w, &created)
	assert.Equal(t, models.BookingPending, created.ServiceBooking.Status)
	require.Len(t, notifier.bookings, 1)

	w = doJSON(t, r, http.MethodGet, "/service-bookings", nil)
	var list struct {
		ServiceBookings []models.ServiceBooking `json:"service_bookings"`
	}
	decode(t, w, &list)
	assert.Len(t, list.ServiceBookings, 1)
}

func TestCreateServiceBookingBadDate(t *testing.T) {
	h, notifier := newTestHandlers(t)
	body := bookingBody("Kim")
	body["preferred_date"] = "next tuesday"

	w := doJSON(t, newTestRouter(h), http.MethodPost, "/service-bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, notifier.bookings)
}

func TestUpdateServiceBookingStatus(t *testing.T) {
	h, _ := newTestHandlers(t)
	r := newTestRouter(h)
	w := doJSON(t, r, http.MethodPost, "/service-bookings", bookingBody("Lee"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ServiceBooking models.ServiceBooking `json:"service_booking"`
	}
	decode(t, w, &created)
	path := fmt.Sprintf("/admin/service-bookings/%d/status", created.ServiceBooking.ID)

	w = doJSON(t, r, http.MethodPatch, path, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, path, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPatch, path, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/admin/service-bookings/999/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
