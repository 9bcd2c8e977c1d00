package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetPromos is the handler for GET /v1/promos
func (h *Handlers) GetPromos(c *gin.Context) {
	promos, err := h.Store.ListPromos(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promos": promos})
}

// CreatePromo is the handler for POST /v1/promos
func (h *Handlers) CreatePromo(c *gin.Context) {
	var input models.CreatePromoInput
	if !h.bindJSON(c, &input) {
		return
	}

	promo, err := h.Store.CreatePromo(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Promo created successfully",
		"promo":   promo,
	})
}
