// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, written as the "logger" field
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer
}

// NewLogger creates a logger from cfg
func NewLogger(cfg LoggerConfig) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Format == "text" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}

	return newLogger(output, cfg.Name, parseLevel(cfg.Level))
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return newLogger(io.Discard, "nop", LevelError)
}

// OpenFile opens (or creates) a log file for appending. The parent
// directory is created if needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// ParseLevel converts a level name into a Level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "fatal":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// parseLevel is ParseLevel falling back to info
func parseLevel(level string) Level {
	l, err := ParseLevel(level)
	if err != nil {
		return LevelInfo
	}
	return l
}
