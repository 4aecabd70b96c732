// Package config handles loading configuration from .env files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration loaded from a .env file.
// Everything is optional; the zero value is a working configuration.
type Config struct {
	// LogFile overrides where the rotating log file is written.
	LogFile string

	// NoColor disables styled terminal output.
	NoColor bool

	// Output is the default output format ("text" or "json") when the
	// --output flag is not given.
	Output string
}

// DefaultEnvPath is the default path for the .env file.
const DefaultEnvPath = ".env"

// ErrNoConfigFile indicates the .env file was not found.
var ErrNoConfigFile = errors.New("configuration file not found")

// ErrInvalidOutput indicates SAVEMSG_OUTPUT holds an unknown format.
var ErrInvalidOutput = errors.New("invalid output format (must be \"text\" or \"json\")")

// LoadConfig loads configuration from the specified .env file path.
// If path is empty, it uses DefaultEnvPath.
// Returns the config and any warnings (e.g., permission issues) as a slice of strings.
func LoadConfig(path string) (*Config, []string, error) {
	if path == "" {
		path = DefaultEnvPath
	}

	var warnings []string

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNoConfigFile, absPath)
		}
		return nil, nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	// Check file permissions (Unix only)
	mode := info.Mode().Perm()
	if mode&0o022 != 0 {
		warnings = append(warnings, fmt.Sprintf(
			"config file %s has permissions %04o, should not be group/world writable",
			absPath, mode,
		))
	}

	if err := godotenv.Load(absPath); err != nil {
		return nil, nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, warnings, err
	}

	return cfg, warnings, nil
}

// LoadConfigFromEnv loads configuration directly from environment variables
// without reading a .env file.
func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv populates the Config from environment variables.
func (c *Config) loadFromEnv() error {
	c.LogFile = os.Getenv("SAVEMSG_LOG_FILE")

	if v := os.Getenv("SAVEMSG_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SAVEMSG_NO_COLOR value %q: %w", v, err)
		}
		c.NoColor = noColor
	}

	// The plain NO_COLOR convention also disables styling when set at all.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}

	switch v := os.Getenv("SAVEMSG_OUTPUT"); v {
	case "":
		c.Output = "text"
	case "text", "json":
		c.Output = v
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, v)
	}

	return nil
}
