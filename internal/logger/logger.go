// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout nodeconf.
//
// The terminal is owned by the TUI, so the logger never writes to stdout:
// output goes to a JSON log file, by default next to the executable.
package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the
// full zerolog API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label writing to path.
// When path is empty a "nodeconf.log" file next to the executable is
// used; if the file cannot be opened the logger degrades to stderr so a
// broken log path never blocks the viewer.
//
// Every entry carries a "role" field, a timestamp, and a "func" caller
// field holding the fully-qualified function name.
func New(role, path string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "nodeconf.log")
	}

	var out zerolog.Logger
	sink, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		out = zerolog.New(os.Stderr)
	} else {
		out = zerolog.New(sink)
	}

	logger := out.With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver, for enriching with component-specific context.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
