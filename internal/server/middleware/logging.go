package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and latency. Health-check paths are silently skipped.
// Request bodies are never logged; credentials must not reach the log.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.WithComponent("http")

	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration_ms": latency.Milliseconds(),
			"client":      c.ClientIP(),
		}
		if id := RequestIDFromContext(c.Request.Context()); id != "" {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			reqLog.Error("Request completed", fields)
		case status >= 400:
			reqLog.Warn("Request completed", fields)
		default:
			reqLog.Debug("Request completed", fields)
		}
	}
}

func isHealthEndpoint(path string) bool {
	return path == "/health" || path == "/api/health"
}
