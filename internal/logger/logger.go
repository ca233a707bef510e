// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The diffsitter authors

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout diffsitter.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while allowing the application to add helper
// constructors without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "cli").
//
// Output goes to stderr in zerolog's console format so log lines never mix
// with the config dumps the tool writes to stdout. verbose lowers the level
// from Info to Debug.
func NewLogger(role string, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, role, level)
}

// NewWriterLogger constructs a *Logger writing JSON entries to w. Intended
// for tests that inspect log output.
func NewWriterLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	return newLogger(w, role, level)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. It is intended for use
// in tests and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
