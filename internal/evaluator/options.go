package evaluator

import "log/slog"

const defaultWorkers = 4

type options struct {
	logger     *slog.Logger
	workers    int
	skipFailed bool
}

// Option is a functional option for configuring the Evaluator.
type Option func(*options)

// WithLogger configures the evaluator with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWorkers sets how many joints are evaluated at the same time.
// Values below one fall back to the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSkipFailed makes a failing joint record its error and let the rest of
// the batch continue instead of aborting it.
func WithSkipFailed(skip bool) Option {
	return func(o *options) {
		o.skipFailed = skip
	}
}
