// Package logger provides leveled, optionally colored logging to stderr.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Logger writes leveled messages to a single destination. It is meant for
// stderr so the concatenated output artifact is never polluted.
type Logger struct {
	out       io.Writer
	useColors bool
	level     LogLevel
}

// New creates a Logger writing to out at the given level.
func New(out io.Writer, level LogLevel, useColors bool) *Logger {
	return &Logger{
		out:       out,
		useColors: useColors,
		level:     level,
	}
}

// SetLevel parses a level name (debug, info, warn, error, none) and applies
// it. Unknown names fall back to info.
func (l *Logger) SetLevel(levelStr string) {
	l.level = ParseLevel(levelStr)
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// ParseLevel converts a string level name to a LogLevel
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

// Info logs an informational message (standard level)
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, "INFO", color.BlueString, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, "WARN", color.YellowString, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, "ERROR", color.RedString, format, args...)
}

func (l *Logger) log(level LogLevel, prefix string, colorize func(string, ...interface{}) string, format string, args ...interface{}) {
	if l.level > level {
		return
	}
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", timeString(), prefix, fmt.Sprintf(format, args...))
}

// timeString returns a formatted time string for the log prefix
func timeString() string {
	return time.Now().Format("15:04:05.000")
}
