// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-sshkey.
//
// go-sshkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package logging provides the slog-backed logger used by the decoders.
// Decoding is quiet by default; debug-level tracing of cipher, KDF and key
// type dispatch is available by installing a logger built with debug=true.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps log/slog with formatted convenience methods.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// NewLogger creates a logger writing to stderr. When debug is true,
// debug-level records are emitted as well.
func NewLogger(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		logger: slog.New(handler),
		debug:  debug,
	}
}

// DefaultLogger returns a logger with debug disabled.
func DefaultLogger() *Logger {
	return NewLogger(false)
}

// Debugf logs a formatted debug message. No-op unless the logger was
// created with debug enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
