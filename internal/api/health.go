package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the returns API answering its health check).
type HealthHandler struct {
	upstreamPing func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - upstreamPing (func(context.Context) error): checks the returns API is
//     reachable. Typically returns.Client.Ping. May be nil.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(upstreamPing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{upstreamPing: upstreamPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the upstream ping succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the returns API)
	// @Summary      Readiness probe
	// @Description  Returns ready if the returns API is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.upstreamPing != nil {
			if err := h.upstreamPing(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
