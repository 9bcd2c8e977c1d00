package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/01moynul/autoshop-golang/internal/auth"
	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/01moynul/autoshop-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Binding errors report json field names, the same as the store's own checks.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(store.JSONFieldName)
	}
}

// Notifier is told about submissions the shop should follow up on.
type Notifier interface {
	NotifyContactMessage(msg *models.ContactMessage)
	NotifyServiceBooking(booking *models.ServiceBooking)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store         *store.Store
	Notifier      Notifier
	Tokens        *auth.Issuer
	AdminPassword models.Password
	UploadDir     string
	BaseURL       string
	Logger        *slog.Logger
}

// logger falls back to slog.Default() when no Logger was injected.
func (h *Handlers) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// bindJSON decodes the request body into dst and writes a 400 if that fails.
func (h *Handlers) bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		h.respondError(c, store.NewValidationError(verrs))
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
	return false
}

// respondError maps store errors onto HTTP statuses.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads the :id path parameter. Anything but a positive integer is a 400.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
