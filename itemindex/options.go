package itemindex

import "log/slog"

type options struct {
	shards int
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		shards: 1,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures Build.
type Option func(*options)

// WithShards sets the number of shards scanned in parallel.
// Values below 1 are treated as 1; the count is also capped at the number of rows.
func WithShards(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.shards = n
	}
}

// WithLogger sets the logger used for scan diagnostics.
// If nil is passed, output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
