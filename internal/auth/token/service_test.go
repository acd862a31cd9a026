package token

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func testConfig() Config {
	return Config{
		Secret:            "test-secret",
		Issuer:            "accounts-api",
		Audience:          "accounts-clients",
		ExpirationMinutes: 60,
	}
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{})
	if err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestNewService_AppliesDefaults(t *testing.T) {
	svc, err := NewService(Config{Secret: "s"})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if svc.cfg.Issuer != DefaultIssuer {
		t.Errorf("expected default issuer, got %q", svc.cfg.Issuer)
	}
	if svc.cfg.Audience != DefaultAudience {
		t.Errorf("expected default audience, got %q", svc.cfg.Audience)
	}
	if svc.Lifetime() != time.Duration(DefaultExpirationMinutes)*time.Minute {
		t.Errorf("expected default lifetime, got %s", svc.Lifetime())
	}
}

func TestIssueAndParse(t *testing.T) {
	svc, err := NewService(testConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	tok, expiresAt, err := svc.Issue(42, "a@x.com", "A")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Email != "a@x.com" || claims.Name != "A" {
		t.Errorf("unexpected identity claims: %q %q", claims.Email, claims.Name)
	}
	if claims.Issuer != "accounts-api" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if !claims.ExpiresAt.Time.Equal(expiresAt) {
		t.Errorf("embedded exp %v must equal returned expiry %v", claims.ExpiresAt.Time, expiresAt)
	}
}

func TestIssue_TokensDifferPerCall(t *testing.T) {
	svc, _ := NewService(testConfig())

	t1, _, err := svc.Issue(1, "a@x.com", "A")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// iat has second granularity; force a different expiry instant instead.
	svc.clock = func() time.Time { return time.Now().Add(2 * time.Second) }
	t2, _, err := svc.Issue(1, "a@x.com", "A")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if t1 == t2 {
		t.Error("tokens issued at different instants must differ")
	}
}

func TestParse_Expired(t *testing.T) {
	svc, _ := NewService(testConfig())
	svc.clock = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, _, err := svc.Issue(1, "a@x.com", "A")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.clock = time.Now
	if _, err := svc.Parse(tok); err == nil {
		t.Error("expected parse to fail for expired token")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer, _ := NewService(testConfig())
	tok, _, err := issuer.Issue(1, "a@x.com", "A")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cfg := testConfig()
	cfg.Secret = "other-secret"
	verifier, _ := NewService(cfg)
	if _, err := verifier.Parse(tok); err == nil {
		t.Error("expected parse to fail for wrong secret")
	}
}

func TestParse_WrongIssuerOrAudience(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"issuer", func(c *Config) { c.Issuer = "someone-else" }},
		{"audience", func(c *Config) { c.Audience = "other-clients" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issuerCfg := testConfig()
			tc.mutate(&issuerCfg)
			issuer, _ := NewService(issuerCfg)
			tok, _, err := issuer.Issue(1, "a@x.com", "A")
			if err != nil {
				t.Fatalf("issue: %v", err)
			}

			verifier, _ := NewService(testConfig())
			if _, err := verifier.Parse(tok); err == nil {
				t.Errorf("expected parse to fail for mismatched %s", tc.name)
			}
		})
	}
}

func TestParse_RejectsAlgNone(t *testing.T) {
	svc, _ := NewService(testConfig())

	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    "accounts-api",
			Audience:  gojwt.ClaimStrings{"accounts-clients"},
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := svc.Parse(unsigned); err == nil {
		t.Error("expected parse to reject alg=none token")
	}
}

func TestParse_Garbage(t *testing.T) {
	svc, _ := NewService(testConfig())
	for _, bad := range []string{"", "garbage", strings.Repeat("a.", 3)} {
		if _, err := svc.Parse(bad); err == nil {
			t.Errorf("expected parse to fail for %q", bad)
		}
	}
}
