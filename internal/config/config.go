// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `env:"APP_HOST, default=0.0.0.0"`
	Port     string `env:"APP_PORT, default=8080"`
	Env      string `env:"APP_ENV, default=development"` // "development", "production", "testing"
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// TrustProxy keys the login throttle on X-Forwarded-For / X-Real-IP.
	// Only enable it behind a reverse proxy that sets those headers.
	TrustProxy bool `env:"TRUST_PROXY, default=false"`

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST, default=localhost"`
	DBPort     string `env:"POSTGRES_PORT, default=5432"`
	DBUser     string `env:"POSTGRES_USER, default=protectionpro"`
	DBPassword string `env:"POSTGRES_PASSWORD, default=changeme"`
	DBName     string `env:"POSTGRES_DB, default=protectionpro"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST, default=localhost"`
	ValkeyPort     string `env:"VALKEY_PORT, default=6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// Site
	SiteName     string        `env:"SITE_NAME, default=ProtectionPro"`
	Locales      []string      `env:"SITE_LOCALES, default=en,de,fr"`
	PageCacheTTL time.Duration `env:"PAGE_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	locales := cfg.Locales[:0]
	for _, l := range cfg.Locales {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			locales = append(locales, l)
		}
	}
	cfg.Locales = locales
	if len(cfg.Locales) == 0 {
		return nil, fmt.Errorf("SITE_LOCALES must list at least one locale")
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return &cfg, nil
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

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return net.JoinHostPort(c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// DefaultLocale is the locale served at the site root.
func (c *Config) DefaultLocale() string {
	return c.Locales[0]
}
