// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates the logger for the command line.
//   - info messages go to stdout, in the verbose mode also debug messages with level prefixes
//   - warnings and errors go to stderr
//   - the log file, if any, gets all levels as JSON lines.
func NewCliLogger(stdout io.Writer, stderr io.Writer, logFile *File, format LogFormat, verbose bool) Logger {
	var cores []zapcore.Core

	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	cores = append(cores,
		consoleCore(stdout, format, verbose, func(l zapcore.Level) bool {
			return l == InfoLevel || (verbose && l == DebugLevel)
		}),
		consoleCore(stderr, format, verbose, func(l zapcore.Level) bool {
			return l >= WarnLevel
		}),
	)

	return loggerFromZapCore(zapcore.NewTee(cores...))
}

func consoleCore(w io.Writer, format LogFormat, verbose bool, enabler zap.LevelEnablerFunc) zapcore.Core {
	if format == LogFormatJSON {
		encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			MessageKey:  "message",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		})
		return zapcore.NewCore(encoder, zapcore.AddSync(w), enabler)
	}

	config := zapcore.EncoderConfig{MessageKey: "msg"}
	if verbose {
		config.LevelKey = "level"
		config.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return messageOnlyCore{Core: zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), enabler)}
}

// messageOnlyCore drops structured fields, the console shows only the message.
type messageOnlyCore struct {
	zapcore.Core
}

func (c messageOnlyCore) With([]zapcore.Field) zapcore.Core {
	return c
}

func (c messageOnlyCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c messageOnlyCore) Write(entry zapcore.Entry, _ []zapcore.Field) error {
	return c.Core.Write(entry, nil)
}
