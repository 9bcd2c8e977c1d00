package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/auth"
	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// AdminLogin is the handler for POST /v1/admin/login
// It checks the password against ADMIN_PASSWORD_HASH and hands back a bearer token.
func (h *Handlers) AdminLogin(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input models.AdminLoginInput
	if !h.bindJSON(c, &input) {
		return
	}

	// 2. --- Check Password ---
	match, err := h.AdminPassword.Matches(input.Password)
	if err != nil {
		h.logger().Error("admin password check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// 3. --- Issue Token ---
	token, err := h.Tokens.GenerateToken(auth.AdminSubject)
	if err != nil {
		h.logger().Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

//
// --- Admin: Moderation Handlers ---
//

// GetPendingComments is the handler for GET /v1/admin/comments/pending
func (h *Handlers) GetPendingComments(c *gin.Context) {
	comments, err := h.Store.ListPendingComments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ApproveComment is the handler for PATCH /v1/admin/comments/:id/approve
func (h *Handlers) ApproveComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.Store.ApproveComment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment approved",
		"comment": comment,
	})
}

// GetContactMessages is the handler for GET /v1/admin/contact-messages
func (h *Handlers) GetContactMessages(c *gin.Context) {
	messages, err := h.Store.ListContactMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_messages": messages})
}

// MarkContactMessageRead is the handler for PATCH /v1/admin/contact-messages/:id/read
func (h *Handlers) MarkContactMessageRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.Store.MarkContactMessageRead(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Message marked as read",
		"contact_message": msg,
	})
}

// UpdateServiceBookingStatus is the handler for PATCH /v1/admin/service-bookings/:id/status
func (h *Handlers) UpdateServiceBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// 1. --- Bind & Validate JSON ---
	var input models.UpdateBookingStatusInput
	if !h.bindJSON(c, &input) {
		return
	}

	// 2. --- Apply Transition ---
	booking, err := h.Store.UpdateServiceBookingStatus(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Booking status updated",
		"service_booking": booking,
	})
}
