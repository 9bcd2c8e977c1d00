package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateContactMessage is the handler for POST /v1/contact-messages
func (h *Handlers) CreateContactMessage(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.CreateContactMessageInput
	if !h.bindJSON(c, &input) {
		return
	}

	// 2. --- Store Record ---
	msg, err := h.Store.CreateContactMessage(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 3. --- Notify The Shop ---
	if h.Notifier != nil {
		h.Notifier.NotifyContactMessage(msg)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Message sent successfully",
		"contact_message": msg,
	})
}
