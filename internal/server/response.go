package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/apperrors"
)

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// and body are derived from it; otherwise a generic 500 is sent. Clients only
// ever see the flat {"message": "..."} body.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with the given body.
func RespondOK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// RespondCreated sends a 201 response with the given body.
func RespondCreated(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// RespondMessage sends a 200 response with a flat message body.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
