package service

import (
	"errors"

	"github.com/AntonStoeckl/holdqueue/shell"
)

// ErrNilStore is returned when NewService is called without a Store.
var ErrNilStore = errors.New("store must not be nil")

// Option defines a functional option for configuring a Service.
type Option func(*Service) error

// WithLogger sets the logger for handler logging.
func WithLogger(logger shell.Logger) Option {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the context-aware logger. It takes precedence over the basic logger.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(s *Service) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for handler metrics.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(s *Service) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for handler spans.
func WithTracing(collector shell.TracingCollector) Option {
	return func(s *Service) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithRetryOptions configures retries of transient persistence failures for all command handlers.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(s *Service) error {
		s.retryOptions = opts
		return nil
	}
}
