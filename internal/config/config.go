// Package config handles loading the td config.toml configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DirEnvVar overrides the data directory when set. It takes precedence
// over the config file.
const DirEnvVar = "TD_DIR"

// Config represents the td config.toml configuration file.
type Config struct {
	// Dir overrides the data directory (~/.todo by default).
	Dir string `toml:"dir"`

	// DefaultPriority is the priority used when td add has no -p flag.
	// One of high, medium, low; defaults to medium.
	DefaultPriority string `toml:"default-priority"`
}

// Load loads configuration from the given path. Returns an empty config
// if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.Dir = strings.TrimSpace(cfg.Dir)
	cfg.DefaultPriority = strings.TrimSpace(cfg.DefaultPriority)
	return &cfg, nil
}

// ResolveDir returns the data directory to use: the TD_DIR environment
// variable when set, then the config file, then the fallback.
func (c *Config) ResolveDir(fallback string) string {
	if dir := strings.TrimSpace(os.Getenv(DirEnvVar)); dir != "" {
		return dir
	}
	if c != nil && c.Dir != "" {
		return c.Dir
	}
	return fallback
}
