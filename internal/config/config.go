// Package config resolves the process configuration once at startup.
//
// Resolution precedence, highest first: process environment variable,
// .env file entry, config.yml value, hard-coded default. The JWT signing
// secret is the one value with no default — Validate fails without it and
// the process must not serve traffic.
package config

import (
	"fmt"

	"github.com/skillsenselab/accounts/internal/auth/password"
	"github.com/skillsenselab/accounts/internal/auth/token"
	"github.com/skillsenselab/accounts/internal/database"
	"github.com/skillsenselab/accounts/internal/logger"
	"github.com/skillsenselab/accounts/internal/observability"
	"github.com/skillsenselab/accounts/internal/server"
)

// Config is the immutable process configuration, resolved once at startup.
type Config struct {
	Service  ServiceConfig        `yaml:"service" mapstructure:"service"`
	Server   server.Config        `yaml:"server" mapstructure:"server"`
	Logging  logger.Config        `yaml:"logging" mapstructure:"logging"`
	Database database.Config      `yaml:"database" mapstructure:"database"`
	JWT      token.Config         `yaml:"jwt" mapstructure:"jwt"`
	Password password.Config      `yaml:"password" mapstructure:"password"`
	Tracing  observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// ServiceConfig identifies the service.
type ServiceConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
}

// ApplyDefaults fills in defaults for every section.
func (c *Config) ApplyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "accounts"
	}
	if c.Service.Version == "" {
		c.Service.Version = "dev"
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.JWT.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate checks every section. A missing JWT secret fails here, keeping
// the process from ever starting without one.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.JWT.Validate(); err != nil {
		return fmt.Errorf("jwt: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	return nil
}
