package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetArticles is the handler for GET /v1/articles
// Only published articles are listed, newest first.
func (h *Handlers) GetArticles(c *gin.Context) {
	articles, err := h.Store.ListArticles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle is the handler for GET /v1/articles/:id
// Every successful read counts as a view.
func (h *Handlers) GetArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.Store.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle is the handler for POST /v1/articles
func (h *Handlers) CreateArticle(c *gin.Context) {
	var input models.CreateArticleInput
	if !h.bindJSON(c, &input) {
		return
	}

	article, err := h.Store.CreateArticle(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Article created successfully",
		"article": article,
	})
}

// LikeArticle is the handler for POST /v1/articles/:id/like
func (h *Handlers) LikeArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.Store.LikeArticle(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article liked",
		"article": article,
	})
}
