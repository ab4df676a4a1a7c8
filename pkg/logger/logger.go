// Package logger wraps zap behind a small constructor and field helpers.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap.Logger.
type Logger struct {
	*zap.Logger
}

// New builds a logger with the given level ("debug", "info", "warn", "error")
// and encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if encoding != "" {
		cfg.Encoding = encoding
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{l}, nil
}

// Field creates a structured log field.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// ErrorField creates a structured log field for an error value.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}
