package handler

import (
	"net/http"
	"time"

	"multichain-custody/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	checkers []ports.HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checkers ...ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// Check handles GET /health. Returns 200 with per-dependency status,
// or 503 with status "degraded" when any dependency is unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	httpStatus := http.StatusOK
	deps := make(map[string]string, len(h.checkers))

	for _, checker := range h.checkers {
		depStatus := "up"
		if err := checker.Ping(ctx); err != nil {
			depStatus = "down"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
		deps[checker.Name()] = depStatus
	}

	c.JSON(httpStatus, gin.H{
		"status":       status,
		"dependencies": deps,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
