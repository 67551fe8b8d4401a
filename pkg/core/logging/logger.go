// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     logging
// Description: Structured logger with level, fields and coded error support
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"

	"github.com/rs/zerolog"

	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) toZerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Logger writes structured log entries
type Logger struct {
	zl    zerolog.Logger
	name  string
	level Level
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.write(l.zl.Debug(), msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Fields) {
	l.write(l.zl.Info(), msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.write(l.zl.Warn(), msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Fields) {
	l.write(l.zl.Error(), msg, fields)
}

// ErrorWithErr logs an error message together with err
func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.write(l.zl.Error().Err(err), msg, fields)
}

// LogError logs err at a level matching its severity. Coded errors add
// their code and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	coded, ok := err.(*pwerrors.Error)
	if !ok {
		l.write(l.zl.Error().Err(err), err.Error(), nil)
		return
	}

	fields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	var ev *zerolog.Event
	switch coded.Severity() {
	case pwerrors.SeverityLow:
		ev = l.zl.Info()
	case pwerrors.SeverityMedium:
		ev = l.zl.Warn()
	default:
		ev = l.zl.Error()
	}
	l.write(ev, coded.Message(), []Fields{fields, Err(coded.Unwrap())})
}

// WithField returns a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		zl:    l.zl.With().Interface(key, value).Logger(),
		name:  l.name,
		level: l.level,
	}
}


// Named returns a logger with a different logger name
func (l *Logger) Named(name string) *Logger {
	return &Logger{zl: l.zl, name: name, level: l.level}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// GetLevel returns the minimum level that is written
func (l *Logger) GetLevel() Level {
	return l.level
}

// IsLevelEnabled returns true if entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) write(ev *zerolog.Event, msg string, fields []Fields) {
	if ev == nil {
		return
	}
	ev = ev.Str("logger", l.name)
	for _, f := range fields {
		for k, v := range f {
			if v == nil {
				continue
			}
			if err, ok := v.(error); ok {
				ev = ev.AnErr(k, err)
				continue
			}
			ev = ev.Interface(k, v)
		}
	}
	ev.Msg(msg)
}

func newLogger(w io.Writer, name string, level Level) *Logger {
	zl := zerolog.New(w).
		Level(level.toZerolog()).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl, name: name, level: level}
}
