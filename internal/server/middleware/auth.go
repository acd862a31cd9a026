package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/auth/authctx"
	"github.com/skillsenselab/accounts/internal/auth/token"
	"github.com/skillsenselab/accounts/internal/logger"
)

// TokenValidator validates a bearer token string and returns its claims.
type TokenValidator func(tokenString string) (*token.Claims, error)

// RequireAuth returns the authorization gate for protected routes. It
// validates the Authorization header's bearer token and stores the claims in
// the request context for downstream handlers.
//
// Every failure — missing header, malformed header, bad signature, expiry,
// wrong issuer or audience — produces the same generic 401. The distinct
// cause goes to the log only; nothing in the response tells a caller which
// check failed.
func RequireAuth(validate TokenValidator, log *logger.Logger) gin.HandlerFunc {
	gateLog := log.WithComponent("authgate")

	reject := func(c *gin.Context, reason string, err error) {
		fields := logger.Fields(
			"reason", reason,
			"path", c.Request.URL.Path,
		)
		if id := RequestIDFromContext(c.Request.Context()); id != "" {
			fields[logger.FieldRequestID] = id
		}
		if err != nil {
			fields[logger.FieldError] = err.Error()
		}
		gateLog.Warn("Request rejected", fields)
		appErr := apperrors.Unauthorized()
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, "missing_header", nil)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c, "malformed_header", nil)
			return
		}

		claims, err := validate(parts[1])
		if err != nil {
			reject(c, "invalid_token", err)
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Next()
	}
}
