package enumtable

import "log/slog"

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report declarations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts ...Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
