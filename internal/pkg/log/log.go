// Package log provides a context-aware structured logger backed by zap.
package log

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap/zapcore"
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger interface {
	// Debug logs message in the debug level, attributes from the ctx are added to the record.
	Debug(ctx context.Context, message string)
	// Info logs message in the info level, attributes from the ctx are added to the record.
	Info(ctx context.Context, message string)
	// Warn logs message in the warning level, attributes from the ctx are added to the record.
	Warn(ctx context.Context, message string)
	// Error logs message in the error level, attributes from the ctx are added to the record.
	Error(ctx context.Context, message string)

	Debugf(ctx context.Context, template string, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Errorf(ctx context.Context, template string, args ...any)

	With(attrs ...attribute.KeyValue) Logger
	// WithComponent appends the component name, nested components are joined by a dot.
	WithComponent(component string) Logger

	Sync() error
}

// DebugLogger returns logs as string in tests.
// Each getter returns matching messages and truncates all collected messages.
type DebugLogger interface {
	Logger
	Truncate()
	AllMessages() string
	DebugMessages() string
	InfoMessages() string
	WarnMessages() string
	ErrorMessages() string
	WarnAndErrorMessages() string
}
