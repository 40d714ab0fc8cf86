// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	MongoURL      string `env:"MONGODB_URL"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"oscode_platform"`
	ServerHost    string `env:"HOST" envDefault:"0.0.0.0"`
	ServerPort    int    `env:"PORT" envDefault:"8000"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	FrontendDir   string `env:"FRONTEND_DIR" envDefault:"./frontend/build"`

	// Session configuration
	RedisURL string `env:"REDIS_URL"` // Optional Redis URL for external session storage

	// Admin credentials
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"oscode2024"`
	PresidentPassword string `env:"PRESIDENT_PASSWORD" envDefault:"oscode2024"`
	VPPassword        string `env:"VP_PASSWORD" envDefault:"oscode2024"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseMongoStore returns true if a MongoDB connection is configured.
func (c Config) UseMongoStore() bool {
	return c.MongoURL != ""
}

// UseRedisSessions returns true if Redis session storage is configured.
func (c Config) UseRedisSessions() bool {
	return c.RedisURL != ""
}

// AdminCredentials returns the static username to password mapping used by
// the auth gate. Usernames follow the original deployment roles.
func (c Config) AdminCredentials() map[string]string {
	return map[string]string{
		"admin":          c.AdminPassword,
		"president":      c.PresidentPassword,
		"vice_president": c.VPPassword,
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	return cfg, nil
}
