package logger

import "log/slog"

const (
	OperationAttr = "operation"
	RegionAttr    = "region"
	ErrorAttr     = "error"
	CandidateAttr = "candidate"
	LeniencyAttr  = "leniency"
)

// ErrAttr renders err as a slog.Attr, tolerating a nil error.
func ErrAttr(err any) slog.Attr {
	if err == nil {
		return slog.String(ErrorAttr, "<nil>")
	}
	return slog.Any(ErrorAttr, err)
}
