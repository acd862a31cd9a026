package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the request/response header carrying the request id.
const HeaderRequestID = "X-Request-Id"

// keyRequestID is the gin key under which the id is stored.
const keyRequestID = "request_id"

type requestIDKey struct{}

// RequestID assigns each request an id (honoring one supplied by the caller),
// echoes it on the response, and threads it through the request context so
// downstream log lines can carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), requestIDKey{}, id))
		c.Next()
	}
}

// RequestIDFromContext returns the request id threaded by RequestID, or ""
// when the request never passed through it.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
