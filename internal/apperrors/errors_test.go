package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeDatabaseError, "db down", http.StatusInternalServerError)
	if !err.Retryable {
		t.Error("DATABASE_ERROR should be retryable")
	}
}

func TestAppError_EmailExists(t *testing.T) {
	err := EmailExists()
	if err.Message != "Email already exists" {
		t.Errorf("message must match the API contract, got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
}

func TestAppError_InvalidCredentials(t *testing.T) {
	err := InvalidCredentials()
	if err.Message != "Invalid email or password" {
		t.Errorf("message must match the API contract, got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
}

func TestAppError_Unauthorized(t *testing.T) {
	err := Unauthorized()
	if err.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.HTTPStatus)
	}
	if err.Message != "Unauthorized" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if got, ok := AsAppError(wrapped); !ok || got.Code != ErrCodeInternal {
		t.Error("expected AsAppError to unwrap nested AppError")
	}
}

func TestAppError_ToResponse(t *testing.T) {
	err := NotFound("user")
	resp := err.ToResponse()
	if resp.Message != "User not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Details["resource"] != "user" {
		t.Errorf("expected resource detail, got %v", resp.Details)
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Validation("bad input").WithDetail("field", "email")
	if err.Details["field"] != "email" {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}
