package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that override
// them. Explicit bindings keep the override surface documented in one place.
var envBindings = map[string]string{
	"jwt.secret":             "JWT_SECRET_KEY",
	"jwt.issuer":             "JWT_ISSUER",
	"jwt.audience":           "JWT_AUDIENCE",
	"jwt.expiration_minutes": "JWT_EXPIRATION_MINUTES",
	"database.dsn":           "CONNECTION_STRING",
	"server.host":            "SERVER_HOST",
	"server.port":            "SERVER_PORT",
	"logging.level":          "LOG_LEVEL",
	"logging.format":         "LOG_FORMAT",
}

// LoaderOption configures Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile    string
	configFileSet bool
	envFile       string
	envFileSet    bool
}

// WithConfigFile sets an explicit config file path. An empty path disables
// the config file search entirely.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) {
		o.configFile = path
		o.configFileSet = true
	}
}

// WithEnvFile sets an explicit .env file path. An empty path disables the
// .env file search entirely.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) {
		o.envFile = path
		o.envFileSet = true
	}
}

// Load resolves the full configuration: .env file into the process
// environment (without overriding variables already set), then the YAML
// config file, then explicit environment bindings on top. The result has
// defaults applied and is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	// godotenv never overrides variables already present in the process
	// environment, which is what gives real env vars precedence over .env.
	envFile := o.envFile
	if !o.envFileSet {
		envFile = findFirst(".env", "cmd/server/.env")
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()

	configFile := o.configFile
	if !o.configFileSet {
		configFile = findFirst("config.yml", "cmd/server/config.yml", "config/config.yml")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
