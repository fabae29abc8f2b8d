// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"strings"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type debugLogger struct {
	*zapLogger
	logs *observer.ObservedLogs
}

func NewDebugLogger() DebugLogger {
	core, logs := observer.New(DebugLevel)
	return &debugLogger{zapLogger: loggerFromZapCore(core), logs: logs}
}

func (l *debugLogger) Truncate() {
	l.logs.TakeAll()
}

func (l *debugLogger) AllMessages() string {
	return l.messages(func(zapcore.Level) bool { return true })
}

func (l *debugLogger) DebugMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == DebugLevel })
}

func (l *debugLogger) InfoMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == InfoLevel })
}

func (l *debugLogger) WarnMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == WarnLevel })
}

func (l *debugLogger) ErrorMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == ErrorLevel })
}

func (l *debugLogger) WarnAndErrorMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level >= WarnLevel })
}

func (l *debugLogger) messages(filter func(zapcore.Level) bool) string {
	var out strings.Builder
	for _, entry := range l.logs.TakeAll() {
		if filter(entry.Level) {
			out.WriteString(entry.Level.CapitalString())
			out.WriteString("  ")
			out.WriteString(entry.Message)
			out.WriteString("\n")
		}
	}
	return out.String()
}
