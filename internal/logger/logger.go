// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logs and exposes a MongoDB command
// monitor that reports driver commands through the same logger, so
// database activity shows up next to the request that caused it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the root application logger from configuration.
//
// JSON output goes to stdout; the console format is meant for humans and
// writes to stderr. Every entry carries a timestamp plus the service and
// environment fields.
func New(cfg *config.Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Logging.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return NewWithWriter(cfg, w)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", config.ServiceName).
		Str("environment", cfg.Primary.Env).
		Logger()
}

// NewBootstrap returns a console logger used before configuration is known.
func NewBootstrap() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
