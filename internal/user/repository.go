package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsenselab/accounts/internal/database"
)

// Repository errors. Callers branch on these instead of driver errors.
var (
	ErrNotFound       = errors.New("user: not found")
	ErrDuplicateEmail = errors.New("user: email already exists")
)

// Repository persists user records.
type Repository interface {
	// Create inserts the user and fills in the assigned ID.
	// Returns ErrDuplicateEmail if the email unique index rejects the insert.
	Create(ctx context.Context, u *User) error

	// FindByEmail returns the user with the given email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given id or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]User, error)

	// Update saves changed fields of an existing user.
	// Returns ErrDuplicateEmail if an email change collides.
	Update(ctx context.Context, u *User) error

	// Delete removes the user with the given id or returns ErrNotFound.
	Delete(ctx context.Context, id uint) error

	// EmailTaken reports whether any user has the given email.
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type gormRepository struct {
	db *database.DB
}

// NewRepository creates a GORM-backed user repository.
func NewRepository(db *database.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if database.IsDuplicate(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *gormRepository) Update(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if database.IsDuplicate(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

var _ Repository = (*gormRepository)(nil)
