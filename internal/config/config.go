package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/shortstring/symbol"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("config")

// Config holds the shortstring tool configuration.
type Config struct {
	// Width of the integers in bits: 16, 32 or 64.
	Width int `yaml:"width"`

	// Cache configuration for symbol tables.
	Cache CacheConfig `yaml:"cache"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig configures the symbol table caches.
type CacheConfig struct {
	Size int `yaml:"size"` // entries per direction
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ValidWidths lists the supported integer widths.
var ValidWidths = []int{16, 32, 64}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Width: 32,
		Cache: CacheConfig{
			Size: symbol.DefaultSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. Missing files yield the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, Error.New("failed to read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, Error.New("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Error.New("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return Error.New("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return Error.New("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if w := os.Getenv("SHORTSTRING_WIDTH"); w != "" {
		width, err := strconv.Atoi(w)
		if err != nil {
			return Error.New("invalid SHORTSTRING_WIDTH %q: %w", w, err)
		}

		c.Width = width
	}

	if level := os.Getenv("SHORTSTRING_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validWidth := false
	for _, w := range ValidWidths {
		if c.Width == w {
			validWidth = true
			break
		}
	}
	if !validWidth {
		return Error.New("invalid width: %d (valid: %v)", c.Width, ValidWidths)
	}

	if c.Cache.Size <= 0 {
		return Error.New("invalid cache size: %d", c.Cache.Size)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return Error.New("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	return nil
}
