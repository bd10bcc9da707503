package observability

import (
	"log/slog"
	"os"
)

// Logger wraps slog behind the narrow interface the services consume.
type Logger struct {
	base *slog.Logger
}

func NewLogger() *Logger {
	return &Logger{base: slog.New(slog.NewJSONHandler(os.Stdout, nil))}
}

func (l *Logger) Info(msg string) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Info(msg)
}

func (l *Logger) Error(msg string) {
	if l == nil || l.base == nil {
		return
	}
	l.base.Error(msg)
}
