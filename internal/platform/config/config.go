// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, token service) via constructors.
  - Zero Hidden State: Nothing reads the environment after [Load].
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/sec"
)

// # Configuration Schema

// Config holds all runtime configuration for the HerStyle API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis), holds the refresh token deny-list
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Token signing. Validated by sec.NewTokenService, not here, so the error
	// names the offending setting.
	AccessSecret          string        `env:"JWT_SECRET_KEY"`
	RefreshSecret         string        `env:"REFRESH_TOKEN_SECRET"`
	LegacyRefreshFallback bool          `env:"AUTH_LEGACY_REFRESH_FALLBACK" envDefault:"false"`
	AccessTokenTTL        time.Duration `env:"ACCESS_TOKEN_TTL"             envDefault:"24h"`
	RefreshTokenTTL       time.Duration `env:"REFRESH_TOKEN_TTL"            envDefault:"168h"`

	// Bootstrap administrator, created at startup when both are set
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// CookieSecure sets the Secure attribute on auth cookies.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"true"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// TokenKeys maps the signing settings onto a [sec.KeyConfig].
func (c *Config) TokenKeys() sec.KeyConfig {
	return sec.KeyConfig{
		AccessSecret:        c.AccessSecret,
		RefreshSecret:       c.RefreshSecret,
		AllowDerivedRefresh: c.LegacyRefreshFallback,
		AccessTTL:           c.AccessTokenTTL,
		RefreshTTL:          c.RefreshTokenTTL,
		Issuer:              constants.AuthIssuer,
	}
}

// HasBootstrapAdmin reports whether an administrator account should be ensured at startup.
func (c *Config) HasBootstrapAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
