// Package logger builds the process logger from a resolved node
// configuration. The library core itself never logs; this is for the
// binaries and examples around it.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/molemesh/molemesh-go/pkg/config"
)

// New returns a structured logger honoring the configuration's log level and
// sink selection. The Console logger writes human-readable text; anything
// else falls back to JSON. A nil out writes to standard error.
func New(cfg *config.Config, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: Level(cfg.LogLevel)}

	var handler slog.Handler
	switch cfg.Logger {
	case config.LoggerConsole:
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler).With("nodeID", cfg.NodeID)
}

// Level converts a configuration log level to a slog level. Trace has no
// slog equivalent and maps below debug; unknown values default to info.
func Level(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelTrace:
		return slog.LevelDebug - 4
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
