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

func productBody(name string) gin.H {
	return gin.H{
		"name":           name,
		"price":          89.99,
		"image_url":      "https://cdn.example.com/p.jpg",
		"category":       "Brakes",
		"stock_quantity": 4,
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	h, _ := newTestHandlers(t)
	r := newTestRouter(h)

	w := doJSON(t, r, http.MethodPost, "/products", productBody("Brake pads"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Product models.Product `json:"product"`
	}
	decode(t, w, &created)
	assert.True(t, created.Product.IsAvailable)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", created.Product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Product models.Product `json:"product"`
	}
	decode(t, w, &got)
	assert.Equal(t, "Brake pads", got.Product.Name)
	assert.Equal(t, 89.99, got.Product.Price)
	assert.Equal(t, 4, got.Product.StockQuantity)

	w = doJSON(t, r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Products []models.Product `json:"products"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Products, 1)
}

func TestGetProductNotFound(t *testing.T) {
	h, _ := newTestHandlers(t)
	w := doJSON(t, newTestRouter(h), http.MethodGet, "/products/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Resource not found"}`, w.Body.String())
}

func TestCreateProductRequiresStockQuantity(t *testing.T) {
	h, _ := newTestHandlers(t)
	body := productBody("Oil filter")
	delete(body, "stock_quantity")

	w := doJSON(t, newTestRouter(h), http.MethodPost, "/products", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "stock_quantity")
}
