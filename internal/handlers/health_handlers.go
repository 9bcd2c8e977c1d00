package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the handler for GET /v1/healthcheck
func (h *Handlers) HealthCheck(c *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.Store.DB.PingContext(c.Request.Context()); err != nil {
		h.logger().Error("healthcheck ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "timestamp": now})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": now})
}
