package walker

import (
	"github.com/dwalters/treecat/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger   utils.Logger
	Eligible func(name string) bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:   &utils.NoopLogger{},
		Eligible: nil, // no type filtering by default
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithEligible sets the file-name eligibility check. Files for which the
// function returns false are skipped before any read is attempted.
func WithEligible(fn func(name string) bool) Option {
	return func(opts *WalkOptions) {
		opts.Eligible = fn
	}
}
