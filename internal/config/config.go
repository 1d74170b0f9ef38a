package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rectfill/rectfill/pkg/algo"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "rectfill.yaml"

// Config represents the top-level configuration structure parsed from rectfill.yaml.
type Config struct {
	// Search tunes the rectangle search.
	Search SearchConfig `yaml:"search"`
	// Input controls how point lists are read.
	Input InputConfig `yaml:"input"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Render configures the PNG mask dump.
	Render RenderConfig `yaml:"render"`
}

// SearchConfig configures the block index and the worker pool.
type SearchConfig struct {
	// BlockSize is the edge length of one block index entry, in grid cells.
	BlockSize int `yaml:"block_size"`
	// Workers is the size of the worker pool; 0 uses every available CPU.
	Workers int `yaml:"workers"`
}

// InputConfig configures input handling.
type InputConfig struct {
	// Strict rejects loops with diagonal edges or fewer than two points.
	Strict bool `yaml:"strict"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stdout.
	Path string `yaml:"path"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// RenderConfig configures mask rendering.
type RenderConfig struct {
	// Scale is the pixel size of one grid cell.
	Scale int `yaml:"scale"`
}

// Load reads the configuration at path, applies the .env file next to it and
// RECTFILL_* environment overrides, fills in defaults and validates the
// result. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	// Values already set in the environment win over .env.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("RECTFILL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECTFILL_WORKERS: %w", err)
		}
		cfg.Search.Workers = n
	}
	if v := os.Getenv("RECTFILL_BLOCK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECTFILL_BLOCK_SIZE: %w", err)
		}
		cfg.Search.BlockSize = n
	}
	if v := os.Getenv("RECTFILL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RECTFILL_LOG_PATH"); v != "" {
		cfg.Logging.Path = v
	}
	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Search.BlockSize == 0 {
		config.Search.BlockSize = algo.DefaultBlockSize
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
	if config.Render.Scale == 0 {
		config.Render.Scale = 4
	}
}

// Validate checks the configuration for out-of-range values.
func Validate(config *Config) error {
	if config.Search.BlockSize < 1 {
		return fmt.Errorf("invalid search.block_size: %d (must be positive)", config.Search.BlockSize)
	}
	if config.Search.Workers < 0 {
		return fmt.Errorf("invalid search.workers: %d (must not be negative)", config.Search.Workers)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
		// ok
	default:
		return fmt.Errorf("invalid logging format: %s (allowed: text, json)", config.Logging.Format)
	}

	if config.Render.Scale < 1 || config.Render.Scale > 64 {
		return fmt.Errorf("invalid render.scale: %d (allowed: 1-64)", config.Render.Scale)
	}
	return nil
}
