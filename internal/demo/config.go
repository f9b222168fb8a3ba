package demo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config controls the demonstration run.
type Config struct {
	// Count is the number of terms the base generator produces before its
	// first display. The adapter and decorator displays always use
	// numgen.DisplayCount.
	Count int

	// Color renders headers with the terminal theme.
	Color bool
}

// DefaultConfig returns the reference demonstration settings.
func DefaultConfig() Config {
	return Config{Count: 5}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if c := os.Getenv("SEQGEN_DEMO_COUNT"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return cfg, fmt.Errorf("SEQGEN_DEMO_COUNT: %w", err)
		}
		cfg.Count = n
	}
	if c := os.Getenv("SEQGEN_COLOR"); c == "1" || strings.EqualFold(c, "true") {
		cfg.Color = true
	}

	return cfg, nil
}

// Validate rejects negative counts.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("demo count must be non-negative, got %d", c.Count)
	}
	return nil
}
