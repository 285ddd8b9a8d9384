package middleware

import (
	"net/http"

	"catalog_service/internal/delivery"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery turns a handler panic into a 500 envelope.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Errorf("Middleware: Recovered from panic: %v", recovered)
		delivery.AbortResponse(c, http.StatusInternalServerError, "Internal server error")
	})
}
