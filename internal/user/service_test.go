package user

import (
	"context"
	"testing"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/auth/password"
	"github.com/skillsenselab/accounts/internal/logger"
)

func newTestUserService(t *testing.T) *Service {
	t.Helper()
	hasher := password.NewBcryptHasher(password.WithCost(4))
	return NewService(NewMemoryRepository(), hasher, logger.NewDefault("test"))
}

func mustCreate(t *testing.T, svc *Service, email, name string) *Response {
	t.Helper()
	u, err := svc.Create(context.Background(), CreateInput{
		Email:    email,
		Password: "initial-password",
		Name:     name,
	})
	if err != nil {
		t.Fatalf("create %s: %v", email, err)
	}
	return u
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestUserService(t)
	created := mustCreate(t, svc, "a@example.com", "A")

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "a@example.com" || got.Name != "A" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestCreateStoresHashNotPlaintext(t *testing.T) {
	repo := NewMemoryRepository()
	hasher := password.NewBcryptHasher(password.WithCost(4))
	svc := NewService(repo, hasher, logger.NewDefault("test"))

	created, err := svc.Create(context.Background(), CreateInput{
		Email:    "hash@example.com",
		Password: "plain-password",
		Name:     "H",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash == "plain-password" || stored.PasswordHash == "" {
		t.Error("stored password must be a hash")
	}
	if err := hasher.Verify("plain-password", stored.PasswordHash); err != nil {
		t.Errorf("stored hash must verify the original password: %v", err)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Get(context.Background(), 42)
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if appErr.Message != "User not found" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestEmailsAreCaseSensitive(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, password.NewBcryptHasher(password.WithCost(4)), logger.NewDefault("test"))

	mustCreate(t, svc, "case@example.com", "Lower")
	// The store compares emails exactly as stored, so a case variant is a
	// distinct account, not a duplicate.
	if _, err := svc.Create(context.Background(), CreateInput{
		Email:    "Case@example.com",
		Password: "other-password",
		Name:     "Upper",
	}); err != nil {
		t.Fatalf("case-distinct email must not collide: %v", err)
	}

	taken, err := repo.EmailTaken(context.Background(), "CASE@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("email taken: %v", err)
	}
	if taken {
		t.Error("lookup must not fold case")
	}

	u, err := repo.FindByEmail(context.Background(), "case@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.Name != "Lower" {
		t.Errorf("exact lookup must return the exact-case account, got %q", u.Name)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := newTestUserService(t)
	mustCreate(t, svc, "dup@example.com", "First")

	_, err := svc.Create(context.Background(), CreateInput{
		Email:    "dup@example.com",
		Password: "other-password",
		Name:     "Second",
	})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeAlreadyExists {
		t.Fatalf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestUpdateNameOnly(t *testing.T) {
	svc := newTestUserService(t)
	created := mustCreate(t, svc, "u@example.com", "Before")

	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Name: "After"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "After" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Email != "u@example.com" {
		t.Errorf("email must be unchanged, got %q", updated.Email)
	}
}

func TestUpdateEmailCollision(t *testing.T) {
	svc := newTestUserService(t)
	mustCreate(t, svc, "taken@example.com", "Holder")
	other := mustCreate(t, svc, "mine@example.com", "Mover")

	_, err := svc.Update(context.Background(), other.ID, UpdateInput{
		Name:  "Mover",
		Email: "taken@example.com",
	})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeAlreadyExists {
		t.Fatalf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	repo := NewMemoryRepository()
	hasher := password.NewBcryptHasher(password.WithCost(4))
	svc := NewService(repo, hasher, logger.NewDefault("test"))

	created, err := svc.Create(context.Background(), CreateInput{
		Email:    "rehash@example.com",
		Password: "old-password",
		Name:     "R",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, UpdateInput{
		Name:     "R",
		Password: "new-password",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := hasher.Verify("new-password", stored.PasswordHash); err != nil {
		t.Errorf("new password must verify: %v", err)
	}
	if err := hasher.Verify("old-password", stored.PasswordHash); err == nil {
		t.Error("old password must no longer verify")
	}
}

func TestDelete(t *testing.T) {
	svc := newTestUserService(t)
	created := mustCreate(t, svc, "gone@example.com", "G")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err == nil {
		t.Error("deleted user must not be found")
	}

	err := svc.Delete(context.Background(), created.ID)
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Fatalf("second delete must be NOT_FOUND, got %v", err)
	}
}

func TestListOrderedByID(t *testing.T) {
	svc := newTestUserService(t)
	mustCreate(t, svc, "one@example.com", "One")
	mustCreate(t, svc, "two@example.com", "Two")
	mustCreate(t, svc, "three@example.com", "Three")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].ID >= users[i].ID {
			t.Errorf("list must be ordered by id: %v", users)
		}
	}
}
