package config

import (
	"golang-stock-catalog/pkg/config"
)

// Auth holds the static login credential pair. No sessions or tokens are
// issued; login is a bare credential check.
type Auth struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	API      config.API      `mapstructure:"api"`
	Auth     Auth            `mapstructure:"auth"`
}

// Load loads the API service configuration from the given path. Keys absent
// from the file keep the defaults below.
func Load(path string) (*Config, error) {
	cfg := Config{
		App:      config.App{Name: "stock-catalog-api", Version: "0.0.1"},
		Logger:   config.Logger{Level: "info", Encoding: "json"},
		Database: config.Database{Driver: "sqlite", Path: "database.db"},
		API:      config.API{Port: 8000},
		Auth:     Auth{Email: "admin@admin.com", Password: "admin123"},
	}
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
