// Package observability provides logging for the converter.
package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Output io.Writer
}

// NewLogger creates a console logger with the given configuration.
// Diagnostics go to stderr by default so they never interleave with the
// interactive prompt text on stdout.
func NewLogger(cfg LogConfig) zerolog.Logger {
	// Enable stack traces in errors
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
	})

	return zl.Level(level).With().Timestamp().Logger()
}

// DefaultLogger returns a logger that only surfaces warnings and errors.
func DefaultLogger() zerolog.Logger {
	return NewLogger(LogConfig{Level: "warn"})
}
