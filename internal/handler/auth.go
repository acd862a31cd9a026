// Package handler contains the Gin handlers for the API surface. Handlers
// decode and validate request bodies, delegate to the services, and shape
// responses; no business rules live here.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/auth"
	"github.com/skillsenselab/accounts/internal/logger"
	"github.com/skillsenselab/accounts/internal/server"
	"github.com/skillsenselab/accounts/internal/validation"
)

// RegisterRequest is the body for POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	svc *auth.Service
	log *logger.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc *auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		log: log.WithComponent("handler.auth"),
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	session, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, session)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, session)
}
