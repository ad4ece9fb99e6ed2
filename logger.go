package driftscript

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger handles logging for DriftScript
type Logger struct {
	backend *log.Logger
}

// NewLogger creates a new logger. When debug is set, debug messages are
// emitted; otherwise only warnings and errors are.
func NewLogger(debug bool) *Logger {
	return NewLoggerWithWriter(os.Stderr, debug)
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(w io.Writer, debug bool) *Logger {
	backend := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "driftscript",
	})
	if debug {
		backend.SetLevel(log.DebugLevel)
	} else {
		backend.SetLevel(log.WarnLevel)
	}
	return &Logger{backend: backend}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.backend.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.backend.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.backend.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.backend.Errorf(format, args...)
}

// ScriptError logs a script-level error with line information
func (l *Logger) ScriptError(message string, line int) {
	if line > 0 {
		l.backend.Errorf("%s (line %d)", message, line)
		return
	}
	l.backend.Errorf("%s", message)
}

// UnknownCommandError logs an unknown command error
func (l *Logger) UnknownCommandError(commandName string, line int) {
	l.ScriptError(fmt.Sprintf("unknown command: %s", commandName), line)
}

// SetLevel sets the minimum level by name ("debug", "info", "warn",
// "error", "fatal"). The level names double as the keyword table used by
// the log ensemble command.
func (l *Logger) SetLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	l.backend.SetLevel(level)
	return nil
}

// Level returns the current minimum level name.
func (l *Logger) Level() string {
	return l.backend.GetLevel().String()
}
