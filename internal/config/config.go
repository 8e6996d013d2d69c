// Package config handles persistent threshold defaults for perfgate.
//
// Configuration is stored as JSON at ~/.config/perfgate/config.json (or
// the platform-equivalent path returned by os.UserConfigDir). Values set
// here sit between the built-in defaults and command-line flags: flags
// always win, the file beats the built-ins.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"perfgate/internal/gates"
)

const (
	appDir   = "perfgate"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds the user's persisted threshold overrides. Nil fields are
// unset and leave the built-in default in force.
type Config struct {
	ErrorRateThreshold   *float64 `json:"error_rate_threshold,omitempty"`
	AvgResponseThreshold *float64 `json:"avg_response_threshold,omitempty"`
	P95Threshold         *float64 `json:"p95_threshold,omitempty"`
	P99Threshold         *float64 `json:"p99_threshold,omitempty"`
	ThroughputThreshold  *float64 `json:"throughput_threshold,omitempty"`
}

// Thresholds overlays the persisted overrides onto base and returns the
// result. The receiver and base are left untouched.
func (c *Config) Thresholds(base gates.Thresholds) gates.Thresholds {
	if c.ErrorRateThreshold != nil {
		base.ErrorRate = *c.ErrorRateThreshold
	}
	if c.AvgResponseThreshold != nil {
		base.AvgResponse = *c.AvgResponseThreshold
	}
	if c.P95Threshold != nil {
		base.P95 = *c.P95Threshold
	}
	if c.P99Threshold != nil {
		base.P99 = *c.P99Threshold
	}
	if c.ThroughputThreshold != nil {
		base.Throughput = *c.ThroughputThreshold
	}
	return base
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
