package tree

import (
	"log/slog"

	"github.com/nestdotland/nest-analyzer/shared/logging"
)

// Options stores per run resolution behavior.
type Options struct {
	FullTree             bool
	OnDependencyFound    func(count int)
	OnDependencyResolved func(count int)
	Concurrency          int
	Logger               *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// NewOptions builds Options from varargs.
func NewOptions(opts ...Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.OnDependencyFound == nil {
		ret.OnDependencyFound = func(int) {}
	}
	if ret.OnDependencyResolved == nil {
		ret.OnDependencyResolved = func(int) {}
	}
	if ret.Logger == nil {
		ret.Logger = logging.Nop()
	}
	return ret
}

// WithFullTree repeats resolved subtrees of shared dependencies instead of
// marking them redundant.
func WithFullTree(fullTree bool) Option {
	return func(o *Options) {
		o.FullTree = fullTree
	}
}

// WithOnDependencyFound sets callback fired once per discovered specifier.
func WithOnDependencyFound(fn func(count int)) Option {
	return func(o *Options) {
		o.OnDependencyFound = fn
	}
}

// WithOnDependencyResolved sets callback fired once per settled import position.
func WithOnDependencyResolved(fn func(count int)) Option {
	return func(o *Options) {
		o.OnDependencyResolved = fn
	}
}

// WithConcurrency bounds number of simultaneous fetches, 0 means unbounded.
func WithConcurrency(limit int) Option {
	return func(o *Options) {
		o.Concurrency = limit
	}
}

// WithLogger sets run logger, records are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
