// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context-aware accessors the fintrack services use.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info,
// Err, Fatal, ...) is available on *Logger directly. Request-scoped
// loggers travel in the context; handlers and repositories recover them
// with FromRequest and FromContext instead of threading a logger through
// every call.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a zerolog.Logger with application helpers attached.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide JSON logger for the given role label
// ("fintrack-server", "fintrack-client").
//
// Every entry carries the role, a timestamp and a "func" caller field
// holding the fully qualified function name. The level comes from the
// LOG_LEVEL environment variable and falls back to debug when unset or
// unparseable.
func NewLogger(role string) *Logger {
	level := zerolog.DebugLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a logger that discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting the receiver's fields.
// Enriching the child does not touch the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context
// by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx via zerolog's WithContext.
// When ctx carries none, zerolog hands back its global logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
