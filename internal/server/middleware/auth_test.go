package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/auth/authctx"
	"github.com/skillsenselab/accounts/internal/auth/token"
	"github.com/skillsenselab/accounts/internal/logger"
)

func newGateEngine(t *testing.T, tokens *token.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/protected", RequireAuth(tokens.ValidatorFunc(), logger.NewDefault("test")), func(c *gin.Context) {
		claims, err := authctx.GetOrError[*token.Claims](c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return engine
}

func newTokens(t *testing.T, secret string) *token.Service {
	t.Helper()
	tokens, err := token.NewService(token.Config{Secret: secret})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := newTokens(t, "gate-secret")
	engine := newGateEngine(t, tokens)

	signed, _, err := tokens.Issue(7, "gina@example.com", "Gina")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["email"] != "gina@example.com" {
		t.Errorf("claims must reach the handler, got %q", body["email"])
	}
}

func TestRequireAuth_RejectionsAreUniform(t *testing.T) {
	tokens := newTokens(t, "gate-secret")
	engine := newGateEngine(t, tokens)

	forged, _, err := newTokens(t, "other-secret").Issue(7, "gina@example.com", "Gina")
	if err != nil {
		t.Fatalf("issue forged: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer without token", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong signature", "Bearer " + forged},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["message"] != "Unauthorized" {
				t.Errorf("every rejection must use the same body, got %q", body["message"])
			}
		})
	}
}
