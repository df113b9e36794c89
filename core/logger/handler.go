package logger

import "log/slog"

// DefaultOpts is the slog.HandlerOptions used by NewDefaultText/NewDefaultJSON.
var DefaultOpts = &slog.HandlerOptions{
	AddSource: false,
	Level:     slog.LevelDebug,
}
