// Package endpoint provides the built-in operational endpoints.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health returns the liveness handler. It is always public and deliberately
// touches nothing beyond the clock — no store access, no token checks.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Server started",
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
