package token

import "errors"

// Default claim values, used when neither environment nor config file
// provide one. The signing secret deliberately has no default.
const (
	DefaultIssuer            = "accounts-api"
	DefaultAudience          = "accounts-clients"
	DefaultExpirationMinutes = 60
)

// Config configures the token service. Tokens are signed with HMAC-SHA256;
// the secret is required and its absence is a startup error, never a
// per-request one.
type Config struct {
	// Secret is the HMAC-SHA256 signing key. Required.
	Secret string `mapstructure:"secret"`

	// Issuer is the "iss" claim, checked on verification.
	Issuer string `mapstructure:"issuer"`

	// Audience is the "aud" claim, checked on verification.
	Audience string `mapstructure:"audience"`

	// ExpirationMinutes is the token lifetime in minutes.
	ExpirationMinutes int `mapstructure:"expiration_minutes"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Issuer == "" {
		c.Issuer = DefaultIssuer
	}
	if c.Audience == "" {
		c.Audience = DefaultAudience
	}
	if c.ExpirationMinutes == 0 {
		c.ExpirationMinutes = DefaultExpirationMinutes
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token: signing secret is required (set JWT_SECRET_KEY)")
	}
	if c.ExpirationMinutes < 0 {
		return errors.New("token: expiration_minutes must be positive")
	}
	return nil
}
