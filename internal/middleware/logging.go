package middleware

import (
	"net/http"
	"time"

	"sysdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logger.For("http")

// RequestLogger logs one line per request through logrus
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"ip":      c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request served")
	}
}

// Recovery turns handler panics into a 500 instead of crashing the server
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("Handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}
