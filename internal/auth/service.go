// Package auth orchestrates registration and login: credential checks,
// password hashing, and session token issuance.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/auth/password"
	"github.com/skillsenselab/accounts/internal/auth/token"
	"github.com/skillsenselab/accounts/internal/logger"
	"github.com/skillsenselab/accounts/internal/user"
)

// Session is returned to the client after a successful registration or login.
// ExpiresAt mirrors the expiry embedded in the token itself.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service implements the authentication flows.
type Service struct {
	repo   user.Repository
	hasher password.Hasher
	tokens *token.Service
	log    *logger.Logger

	// dummyHash absorbs a verification when login hits an unknown email,
	// keeping the failure path's timing close to the wrong-password path.
	dummyHash string
}

// NewService creates the auth service.
func NewService(repo user.Repository, hasher password.Hasher, tokens *token.Service, log *logger.Logger) (*Service, error) {
	dummy, err := hasher.Hash("login-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("auth: prepare dummy hash: %w", err)
	}
	return &Service{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		log:       log.WithComponent("auth"),
		dummyHash: dummy,
	}, nil
}

// Register creates an account and returns a session for it.
// A taken email is rejected before any record is created; the plaintext
// password exists only long enough to be hashed and is never logged.
func (s *Service) Register(ctx context.Context, email, plaintext, name string) (*Session, error) {
	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if taken {
		return nil, apperrors.EmailExists()
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	u := &user.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// Two concurrent registrations can both pass the fast-path check;
		// the store's unique index rejects the loser of the race.
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, apperrors.EmailExists()
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.log.Info("User registered", logger.Fields(logger.FieldUserID, u.ID))
	return s.issueSession(u)
}

// Login verifies credentials and returns a session. Unknown email and wrong
// password produce the same rejection; nothing in the response distinguishes
// the two.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Session, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			_ = s.hasher.Verify(plaintext, s.dummyHash)
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.hasher.Verify(plaintext, u.PasswordHash); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	s.log.Info("User logged in", logger.Fields(logger.FieldUserID, u.ID))
	return s.issueSession(u)
}

func (s *Service) issueSession(u *user.User) (*Session, error) {
	tok, expiresAt, err := s.tokens.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &Session{
		Token:     tok,
		Email:     u.Email,
		Name:      u.Name,
		ExpiresAt: expiresAt,
	}, nil
}
