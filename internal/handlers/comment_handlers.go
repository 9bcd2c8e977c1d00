package handlers

import (
	"net/http"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetArticleComments is the handler for GET /v1/articles/:id/comments
func (h *Handlers) GetArticleComments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.Store.ListComments(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment is the handler for POST /v1/comments
// New comments wait for moderation before they are listed.
func (h *Handlers) CreateComment(c *gin.Context) {
	var input models.CreateCommentInput
	if !h.bindJSON(c, &input) {
		return
	}

	comment, err := h.Store.CreateComment(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment submitted for review",
		"comment": comment,
	})
}
