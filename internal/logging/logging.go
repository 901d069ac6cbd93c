// Package logging adapts log/slog to the projector's Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger forwards printf-style calls to an slog.Logger
type Logger struct {
	l *slog.Logger
}

// New builds a logger writing to w. format is "text" or "json"; level is one
// of debug, info, warn, error (default info).
func New(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{l: slog.New(h)}
}

// ParseLevel maps a level name to an slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func (lg *Logger) Debugf(format string, args ...any) { lg.l.Debug(fmt.Sprintf(format, args...)) }
func (lg *Logger) Infof(format string, args ...any)  { lg.l.Info(fmt.Sprintf(format, args...)) }
func (lg *Logger) Warnf(format string, args ...any)  { lg.l.Warn(fmt.Sprintf(format, args...)) }
func (lg *Logger) Errorf(format string, args ...any) { lg.l.Error(fmt.Sprintf(format, args...)) }
