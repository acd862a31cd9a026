// Package token issues and verifies the signed session tokens that carry a
// user's identity. Sessions are stateless: validity is determined entirely by
// the token's signature and timestamps, with no store lookup.
package token

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims are the facts embedded in a session token.
type Claims struct {
	gojwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Service issues and parses session tokens.
type Service struct {
	cfg   Config
	clock func() time.Time
}

// NewService creates a token service. It fails if the signing secret is
// missing so the process never starts serving without one.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, clock: time.Now}, nil
}

// Lifetime returns the configured token lifetime.
func (s *Service) Lifetime() time.Duration {
	return time.Duration(s.cfg.ExpirationMinutes) * time.Minute
}

// Issue creates a signed token for the given user identity.
// The returned expiry equals the "exp" claim embedded in the token.
func (s *Service) Issue(userID uint, email, name string) (string, time.Time, error) {
	// NumericDate serializes at second granularity; truncate so the expiry
	// handed back to the caller is the same instant the token carries.
	now := s.clock().UTC().Truncate(time.Second)
	expiresAt := now.Add(s.Lifetime())

	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    s.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  name,
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: sign: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a token string and returns its claims. Signature, signing
// method, expiry, issued-at, issuer, and audience are all checked; any
// failure is returned as an error with no further classification.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(s.cfg.Issuer),
		gojwt.WithAudience(s.cfg.Audience),
		gojwt.WithIssuedAt(),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token: parse: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("token: invalid")
	}
	return claims, nil
}

// ValidatorFunc bridges the typed service with middleware that only knows
// about token strings.
func (s *Service) ValidatorFunc() func(string) (*Claims, error) {
	return s.Parse
}

func (s *Service) keyFunc(tok *gojwt.Token) (interface{}, error) {
	if tok.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", tok.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}
