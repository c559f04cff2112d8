// Package config loads and validates rollcall configuration.
//
// It supplies repository defaults, reads TOML files, and honours the
// ROLLCALL_DB environment fallback so the CLI and library receive sanitized
// paths and canonical log settings in one pass.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every knob the CLI needs.
type Config struct {
	// DBPath locates the roster SQLite database.
	DBPath string `toml:"db_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFormat is console or json.
	LogFormat string `toml:"log_format"`
	// SelectionMarker is the literal recorded for a filled selection mark.
	SelectionMarker string `toml:"selection_marker"`
}

// Default returns the repository defaults.
func Default() Config {
	return Config{
		DBPath:          filepath.Join(".", "roster.db"),
		LogLevel:        "info",
		LogFormat:       "console",
		SelectionMarker: "[X]",
	}
}

// Load reads a TOML config file over the defaults. A missing file at the
// default location is not an error; an explicitly requested missing file is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults apply.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if env := os.Getenv("ROLLCALL_DB"); env != "" {
		cfg.DBPath = env
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path: must not be empty")
	}
	return nil
}
