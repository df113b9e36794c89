// Package logger provides the structured-logging surface shared by the
// parser, matcher and as-you-type formatter. It is a trimmed port of the
// original transport-core logging package: a thin interface over log/slog,
// with a Default implementation and a Nil implementation that discards
// everything. Nothing in this module requires a caller to configure
// logging — every entry point defaults to Nil.
package logger

import (
	"context"
	"log/slog"
)

// Logger is the structured logging surface used throughout this module.
// Implementations must be safe for concurrent use.
type Logger interface {
	Handler() slog.Handler
	With(args ...any) Logger
	WithGroup(name string) Logger
	// ForOperation returns a Logger annotated with the operation name and
	// the region code it is running against. Used by the parser and
	// matcher to tag every line emitted during one call.
	ForOperation(operation, region string) Logger
	Enabled(ctx context.Context, level slog.Level) bool
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
