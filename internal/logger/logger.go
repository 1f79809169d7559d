package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready atomic.Bool
)

// Init configures the global JSON logger.
//
// Parameters:
//   - level: debug|info|warn|error (anything else means info).
//   - pretty: use zerolog's console writer instead of JSON lines.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stdout, level, pretty)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(out io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	ready.Store(true)
}

// L returns the global logger. Init is called with defaults when it was
// never called.
func L() *zerolog.Logger {
	if !ready.Load() {
		Init("info", false)
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
