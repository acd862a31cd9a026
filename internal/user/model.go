// Package user owns the account records behind registration, login, and the
// user management endpoints.
package user

import "time"

// User is the persisted account record. The email carries a unique index —
// the database, not the service, is the final authority on uniqueness.
// PasswordHash is always hasher output, never a plaintext password.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Response is the client-facing view of a user. It never carries the hash.
type Response struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts a User to its client-facing view.
func (u *User) ToResponse() Response {
	return Response{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
