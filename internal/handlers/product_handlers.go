package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetProducts is the handler for GET /v1/products
// Products come back grouped by category.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct is the handler for POST /v1/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if !h.bindJSON(c, &input) {
		return
	}

	product, err := h.Store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}
