package ippool

import "log/slog"

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report claims.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
