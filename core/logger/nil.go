package logger

import (
	"context"
	"log/slog"
)

// Nil is the Logger implementation used when no caller-supplied Logger is
// configured. Every method is a no-op. This is the default for the parser,
// matcher and AYTF so that library consumers never see log output unless
// they opt in.
type Nil struct{}

// NewNil constructs a Logger that discards everything.
func NewNil() Logger {
	return &Nil{}
}

func (l *Nil) Handler() slog.Handler {
	return NilHandler
}

func (l *Nil) With(_ ...any) Logger {
	return l
}

func (l *Nil) WithGroup(_ string) Logger {
	return l
}

func (l *Nil) ForOperation(_, _ string) Logger {
	return l
}

func (l *Nil) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (l *Nil) Log(_ context.Context, _ slog.Level, _ string, _ ...any)             {}
func (l *Nil) LogAttrs(_ context.Context, _ slog.Level, _ string, _ ...slog.Attr) {}
func (l *Nil) Debug(_ string, _ ...any)                                           {}
func (l *Nil) DebugContext(_ context.Context, _ string, _ ...any)                 {}
func (l *Nil) Info(_ string, _ ...any)                                            {}
func (l *Nil) InfoContext(_ context.Context, _ string, _ ...any)                  {}
func (l *Nil) Warn(_ string, _ ...any)                                            {}
func (l *Nil) WarnContext(_ context.Context, _ string, _ ...any)                  {}
func (l *Nil) Error(_ string, _ ...any)                                           {}
func (l *Nil) ErrorContext(_ context.Context, _ string, _ ...any)                 {}
