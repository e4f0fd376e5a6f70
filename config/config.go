// Package config loads gridnav settings. Embedded defaults are read first;
// an optional YAML or TOML file then overrides the fields it sets.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/search"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds every setting.
type Config struct {
	Maps   MapsConfig   `yaml:"maps" toml:"maps"`
	Search SearchConfig `yaml:"search" toml:"search"`
	Bench  BenchConfig  `yaml:"bench" toml:"bench"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// MapsConfig locates map files.
type MapsConfig struct {
	Dir     string `yaml:"dir" toml:"dir"`         // searched for bare file names
	Default string `yaml:"default" toml:"default"` // used when no file is given
}

// SearchConfig holds search defaults for the CLI.
type SearchConfig struct {
	Algorithm string `yaml:"algorithm" toml:"algorithm"`
	All       bool   `yaml:"all" toml:"all"`
	Jump      bool   `yaml:"jump" toml:"jump"`
	Limit     int    `yaml:"limit" toml:"limit"` // IDDFS visit cap, 0 for none
}

// BenchConfig holds analysis defaults.
type BenchConfig struct {
	Runs   int    `yaml:"runs" toml:"runs"`
	Output string `yaml:"output" toml:"output"` // CSV path, empty for none
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the file at path, if any.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	if _, err := search.Canonical(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %v", ErrInvalidConfig, err)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit %d < 0", ErrInvalidConfig, c.Search.Limit)
	}
	if c.Bench.Runs < 1 {
		return fmt.Errorf("%w: bench.runs %d < 1", ErrInvalidConfig, c.Bench.Runs)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
