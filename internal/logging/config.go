package logging

import (
	"fmt"
	"os"
	"strings"
)

// Config controls the process logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Format is console or json.
	Format string

	// Development enables caller annotations and stack traces on warnings.
	Development bool
}

// DefaultConfig returns a quiet console logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if l := os.Getenv("SEQGEN_LOG_LEVEL"); l != "" {
		cfg.Level = strings.ToLower(l)
	}
	if f := os.Getenv("SEQGEN_LOG_FORMAT"); f != "" {
		cfg.Format = strings.ToLower(f)
	}
	if d := os.Getenv("SEQGEN_LOG_DEV"); d == "1" || strings.EqualFold(d, "true") {
		cfg.Development = true
	}

	return cfg
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Level)
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Format)
	}
	return nil
}
