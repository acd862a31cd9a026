package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/accounts/internal/apperrors"
)

type registerBody struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

func TestValidate_Valid(t *testing.T) {
	body := registerBody{Email: "a@x.com", Password: "secret1", Name: "A"}
	if err := Validate(body); err != nil {
		t.Errorf("expected no error for valid body, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(registerBody{})
	if err == nil {
		t.Fatal("expected error for empty body")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	err := Validate(registerBody{Email: "not-an-email", Password: "secret1", Name: "A"})
	if err == nil {
		t.Fatal("expected error for malformed email")
	}
	if !strings.Contains(err.Error(), "email: must be a valid email address") {
		t.Errorf("expected json tag name in message, got %q", err.Error())
	}
}

func TestValidate_ShortPassword(t *testing.T) {
	err := Validate(registerBody{Email: "a@x.com", Password: "abc", Name: "A"})
	if err == nil {
		t.Fatal("expected error for short password")
	}
	if !strings.Contains(err.Error(), "password: must be at least 6 characters") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
