// Package config handles configuration file loading for the volctl CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultDevice   = "default_render"
	DefaultStep     = 5
	DefaultLogLevel = "warn"
)

// Config represents the volctl configuration.
type Config struct {
	// Device is the default target device name
	Device string `toml:"device"`
	// Step is the default percentage step for up/down
	Step int `toml:"step"`
	// LogLevel is the default log level when no -v flags are given
	LogLevel string `toml:"log_level"`
	// ToolPath points at an on-disk tool binary; empty means look it
	// up on PATH
	ToolPath string `toml:"tool_path"`
	// WatchIntervalMS is the polling interval for the watch command
	WatchIntervalMS int `toml:"watch_interval_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device:          DefaultDevice,
		Step:            DefaultStep,
		LogLevel:        DefaultLogLevel,
		WatchIntervalMS: 1000,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "volctl", "config.toml")
}

// Load reads the config file at path, falling back to defaults when
// the file does not exist. A present-but-invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if cfg.Step < 0 {
		return cfg, fmt.Errorf("config %q: step must be non-negative", path)
	}
	if cfg.WatchIntervalMS <= 0 {
		cfg.WatchIntervalMS = Default().WatchIntervalMS
	}

	return cfg, nil
}
