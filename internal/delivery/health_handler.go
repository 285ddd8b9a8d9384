package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
	log  *logrus.Logger
}

// NewHealthHandler reports healthy while ping succeeds.
func NewHealthHandler(ping func(ctx context.Context) error, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		ping: ping,
		log:  logger,
	}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Errorf("Health check failed: %v", err)
		ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	SuccessResponse(c, http.StatusOK, "Service healthy", gin.H{"status": "ok"})
}
