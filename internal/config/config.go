// Package config holds tool configuration: defaults, an optional YAML
// config file, and RRT_* environment overrides. Command-line flags win over
// both; the merge happens at the CLI layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rrt configuration.
type Config struct {
	// OutDir is where generated artifacts are written.
	OutDir string `yaml:"out_dir"`

	// SuitesDir is the scenario-suite directory consumed by the oracle.
	SuitesDir string `yaml:"suites_dir"`

	// Epsilon is the numeric comparison tolerance for suite cases.
	Epsilon float64 `yaml:"epsilon"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutDir:    "build",
		SuitesDir: "suites",
		Epsilon:   1e-9,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Environment overrides apply on top either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no config file is the normal case
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays RRT_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("RRT_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("RRT_SUITES_DIR"); v != "" {
		c.SuitesDir = v
	}
	if v := os.Getenv("RRT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RRT_EPSILON"); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse RRT_EPSILON %q: %w", v, err)
		}
		c.Epsilon = eps
	}
	return nil
}
