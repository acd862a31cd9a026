package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/logger"
	"github.com/skillsenselab/accounts/internal/server"
	"github.com/skillsenselab/accounts/internal/user"
	"github.com/skillsenselab/accounts/internal/validation"
)

// CreateUserRequest is the body for POST /api/create-user.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// UpdateUserRequest is the body for PUT /api/update-user/:id. Email and
// password are optional; empty values keep the stored ones.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
}

// UserHandler serves the user management endpoints.
type UserHandler struct {
	svc *user.Service
	log *logger.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc *user.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{
		svc: svc,
		log: log.WithComponent("handler.user"),
	}
}

// List handles GET /api/get-all-user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, users)
}

// Get handles GET /api/get-user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, u)
}

// Create handles POST /api/create-user.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	u, err := h.svc.Create(c.Request.Context(), user.CreateInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, u)
}

// Update handles PUT /api/update-user/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, user.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, u)
}

// Delete handles DELETE /api/delete-user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondMessage(c, "User deleted successfully")
}

// parseID reads the :id path parameter. A non-numeric id is reported as a
// not-found rather than a validation error, so probing for record existence
// with garbage ids learns nothing new.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		server.RespondWithError(c, apperrors.NotFound("user"))
		return 0, false
	}
	return uint(id), true
}
