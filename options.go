package phonenumber

import "github.com/retailcrm/go-phonenumber/core/logger"

// Option configures optional, cross-cutting behavior of Parse, Find and
// NewAsYouTypeFormatter, §A.3/A.1. The zero value of every option's backing
// field is the library's silent default — nothing here is required.
type Option func(*options)

type options struct {
	logger   logger.Logger
	maxTries int
}

func defaultOptions() options {
	return options{logger: logger.NewNil(), maxTries: 0}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches l to the call, so it can emit diagnostic lines (e.g.
// "stripped international prefix", "rejected candidate: brackets or
// date-like"). These lines are never part of the return contract. Absent this
// option, logger.NewNil() is used and nothing is emitted.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxTries overrides Find's maxTries argument when n > 0, so callers
// building a Find through option composition don't need a separate
// parameter for it.
func WithMaxTries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTries = n
		}
	}
}
