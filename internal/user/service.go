package user

import (
	"context"
	"errors"
	"time"

	"github.com/skillsenselab/accounts/internal/apperrors"
	"github.com/skillsenselab/accounts/internal/auth/password"
	"github.com/skillsenselab/accounts/internal/logger"
)

// CreateInput carries the fields for administrative user creation.
type CreateInput struct {
	Email    string
	Password string
	Name     string
}

// UpdateInput carries the fields for a user update. Email and Password are
// optional: empty values leave the current ones in place.
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// Service implements the user management operations.
type Service struct {
	repo   Repository
	hasher password.Hasher
	log    *logger.Logger
}

// NewService creates a user service.
func NewService(repo Repository, hasher password.Hasher, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log.WithComponent("user"),
	}
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]Response, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	out := make([]Response, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id uint) (*Response, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.DatabaseError(err)
	}
	resp := u.ToResponse()
	return &resp, nil
}

// Create inserts a new user with a hashed password. The email must be unused.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Response, error) {
	taken, err := s.repo.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if taken {
		return nil, apperrors.EmailExists()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	u := &User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// The unique index catches the race the EmailTaken fast path misses.
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperrors.EmailExists()
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.log.Info("User created", logger.Fields(logger.FieldUserID, u.ID))
	resp := u.ToResponse()
	return &resp, nil
}

// Update modifies an existing user. An email change re-checks uniqueness;
// a non-empty password is re-hashed before storage.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*Response, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if in.Email != "" && in.Email != u.Email {
		taken, err := s.repo.EmailTaken(ctx, in.Email)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if taken {
			return nil, apperrors.EmailExists()
		}
		u.Email = in.Email
	}

	u.Name = in.Name

	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperrors.EmailExists()
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.log.Info("User updated", logger.Fields(logger.FieldUserID, u.ID))
	resp := u.ToResponse()
	return &resp, nil
}

// Delete removes a user by id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NotFound("user")
		}
		return apperrors.DatabaseError(err)
	}
	s.log.Info("User deleted", logger.Fields(logger.FieldUserID, id))
	return nil
}
