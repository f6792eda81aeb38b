package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultDBPath = "~/.local/share/appcatalog/registry.db"
	DefaultLocale = "en"
	envPrefix     = "APPCATALOG"
)

// Config holds all application configuration, read from APPCATALOG_* variables.
type Config struct {
	DBPath    string `envconfig:"DB" default:"~/.local/share/appcatalog/registry.db"`
	Locale    string `envconfig:"LOCALE" default:"en"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		DBPath:    DefaultDBPath,
		Locale:    DefaultLocale,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
