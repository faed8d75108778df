package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Setup builds the process logger on stdout and installs it as the zerolog
// global, which handlers use for unexpected errors.
//   - level: trace, debug, info, warn, error, fatal, panic (unknown falls back to info)
//   - format: "json" for production, "pretty" for human-readable dev output
func Setup(level, format string) zerolog.Logger {
	log := New(os.Stdout, level, format)
	zlog.Logger = log
	if _, err := zerolog.ParseLevel(strings.ToLower(level)); err != nil || level == "" {
		log.Warn().Str("log_level", level).Msg("unknown log level, using info")
	}
	return log
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level, format string) zerolog.Logger {
	if format == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "unigrade-backend").
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}
