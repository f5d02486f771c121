// Package log is a small leveled wrapper around the standard log package
// used by the xdl command. The library packages never log.
package log

import (
	"fmt"
	"io"
	"log"
)

type Level uint8

const (
	Silent Level = iota
	Error
	Warn
	Info
	Debug
)

var levelNames = map[string]Level{
	"silent": Silent,
	"error":  Error,
	"warn":   Warn,
	"info":   Info,
	"debug":  Debug,
}

// ParseLevel returns the level called name.
func ParseLevel(name string) (Level, error) {
	l, ok := levelNames[name]
	if !ok {
		return Info, fmt.Errorf("invalid log level %q", name)
	}
	return l, nil
}

// Logger wraps the standard logger with a level threshold.
type Logger struct {
	level  Level
	logger *log.Logger
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "xdl: ", 0),
	}
}

// Errorf logs a message at ERROR level using printf style formatting
func (l *Logger) Errorf(format string, args ...any) {
	if l.level < Error {
		return
	}
	l.logger.Printf("[ERROR] "+format, args...)
}

// Warnf logs a message at WARN level using printf style formatting
func (l *Logger) Warnf(format string, args ...any) {
	if l.level < Warn {
		return
	}
	l.logger.Printf("[WARN] "+format, args...)
}

// Infof logs a message at INFO level using printf style formatting
func (l *Logger) Infof(format string, args ...any) {
	if l.level < Info {
		return
	}
	l.logger.Printf("[INFO] "+format, args...)
}

// Debugf logs a message at DEBUG level using printf style formatting
func (l *Logger) Debugf(format string, args ...any) {
	if l.level < Debug {
		return
	}
	l.logger.Printf("[DEBUG] "+format, args...)
}
