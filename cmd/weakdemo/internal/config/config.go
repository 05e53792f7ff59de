package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/weakref/pkg/selfdestruct"
)

// Config represents the optional weakdemo.yaml configuration.
type Config struct {
	// MaxDelayMS is the upper bound for the self-destruction delay in
	// milliseconds. Zero or negative means the package default.
	MaxDelayMS int `yaml:"max_delay_ms,omitempty"`
	// Verbose enables verbose diagnostics.
	Verbose bool `yaml:"verbose,omitempty"`
}

// LoadOptional reads weakdemo.yaml from dir if present.
// A missing file yields a zero Config without error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weakdemo.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weakdemo.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weakdemo.yaml: %w", err)
	}

	return &cfg, nil
}

// MaxDelay resolves the configured delay bound, falling back to
// selfdestruct.DefaultMaxDelay when unset.
func (c *Config) MaxDelay() time.Duration {
	if c == nil || c.MaxDelayMS <= 0 {
		return selfdestruct.DefaultMaxDelay
	}
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}
