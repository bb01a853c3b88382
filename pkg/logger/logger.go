package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logging interface the services depend on
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	With(args ...any) Logger
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a JSON logger writing to stdout. Unknown levels fall
// back to info. Extra args become attributes on every record, so
// the entry points can stamp their process name once:
//
//	logger.New(cfg.LogLevel, "service", "api")
func New(level string, args ...any) Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	log := slog.New(handler)
	if len(args) > 0 {
		log = log.With(args...)
	}
	return &slogLogger{logger: log}
}

// Default returns an info-level logger, for tests and one-off tools
func Default() Logger {
	return New("info")
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
