package apperrors

import (
	stderrors "errors"
)

// MessageResponse is the JSON body sent to clients for failed requests.
// The API contract uses a flat {"message": "..."} shape.
type MessageResponse struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to the client-facing response body.
func (e *AppError) ToResponse() MessageResponse {
	return MessageResponse{
		Message: e.Message,
		Details: e.Details,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
