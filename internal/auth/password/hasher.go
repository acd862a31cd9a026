// Package password provides one-way password hashing and verification.
//
// It defines a Hasher interface with two implementations:
//   - BcryptHasher: bcrypt with a tunable cost factor (the default)
//   - Argon2Hasher: argon2id with OWASP-recommended parameters
//
// Both salt each hash individually, so hashing the same password twice
// produces different output. Verification is constant-time against the
// stored hash and never panics on malformed input.
package password

import (
	"errors"
)

// ErrMismatch is returned by Verify when the password does not match the
// stored hash, or when the stored hash is malformed. Callers must not
// distinguish between the two cases.
var ErrMismatch = errors.New("password: mismatch")

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted, one-way hash of the password.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given hash.
	// Returns nil on a match and ErrMismatch otherwise.
	Verify(password, hash string) error
}
