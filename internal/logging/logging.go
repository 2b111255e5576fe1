// Package logging provides zerolog construction and context propagation for
// the carbonfocus CLI.
//
// Loggers are built once at command startup from the logging section of the
// configuration, then flow through context.Context so every component logs
// with consistent level, format, and output settings.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Unparsable values fall back to info.
	Level string

	// Format selects "console" (human-readable, colored when attached to a
	// terminal) or "json" output.
	Format string

	// File, when non-empty, appends logs to the named file in addition to
	// stderr. The parent directory must already exist.
	File string
}

// New constructs a zerolog.Logger from cfg.
//
// If a log file is configured but cannot be opened, the logger falls back to
// stderr only; logging setup must never abort a command.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if openErr == nil {
			writers = append(writers, f)
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
// Components are stable identifiers like "cli", "factors", or "snapshot".
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger if none
// has been attached. Attach loggers with zerolog's Logger.WithContext.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	return *zerolog.Ctx(ctx)
}
