package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls handler construction.
type Config struct {
	Level   string // debug, info, warn, error (default info)
	Format  string // text or json (default text)
	Service string
	Version string
}

// NewLogger returns a structured logger with sane defaults. Service and
// version are attached to every record when provided.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if attrs := WithCommon(nil, cfg.Service, cfg.Version); len(attrs) > 0 {
		args := make([]any, 0, len(attrs))
		for _, a := range attrs {
			args = append(args, a)
		}
		logger = logger.With(args...)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
