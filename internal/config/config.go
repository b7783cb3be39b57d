// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct that is injected into
// every component at construction time; nothing else reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBMaxConns int

	// Valkey (Redis-compatible cache). Optional — when VALKEY_HOST is
	// empty the rendered-page cache is disabled.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// PublicBaseURL is the address prefix of the public render endpoint,
	// used to build the URL returned at publish time.
	PublicBaseURL string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying development defaults. Returns an error if critical
// values are missing in production mode.
func Load() (*Config, error) {
	// Missing .env is fine — real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "siteforge"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "siteforge"),
		DBMaxConns: 10,

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		PublicBaseURL: envOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("POSTGRES_MAX_CONNS must be a positive integer, got %q", v)
		}
		cfg.DBMaxConns = n
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey instance is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
