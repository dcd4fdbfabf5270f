package config

import (
	"fmt"
	"time"
)

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Any logs below this level are ignored.
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs ("json" or "console").
	Format string `koanf:"format" validate:"required"`

	// SlowQueryThreshold is a duration beyond which database commands are
	// logged at warn level. Zero disables slow command logging.
	//
	// Env values must be parseable duration strings like "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// HealthChecksConfig controls the dependency checks of the health endpoint.
type HealthChecksConfig struct {
	// Timeout is the max time allowed for the database ping.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

// DefaultLoggingConfig provides the logging defaults: info level, JSON output,
// and a 100ms slow command boundary.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:              "info",
		Format:             "json",
		SlowQueryThreshold: 100 * time.Millisecond,
	}
}

// DefaultHealthChecksConfig allows five seconds for a health check run.
func DefaultHealthChecksConfig() HealthChecksConfig {
	return HealthChecksConfig{
		Timeout: 5 * time.Second,
	}
}

// Validate applies rules that go beyond struct tags.
func (c LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}

	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Format)
	}

	if c.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}

// IsDebug reports whether debug logging is on.
func (c LoggingConfig) IsDebug() bool {
	return c.Level == "debug"
}
