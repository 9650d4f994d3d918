// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler reporting uptime since started.
func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started, now: time.Now}
}

// Serve handles /healthz. Responses are never cached.
// HEAD gets 200 without a body, OPTIONS gets 204, anything else the JSON status.
func (h *HealthHandler) Serve(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime_seconds": int64(h.now().Sub(h.started).Seconds()),
		})
	}
}
