package domain

import (
	"context"
	"time"
)

// Logger interface for dispatch logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// It follows the same dependency-free pattern as MetricsCollector, allowing users to
// integrate with any logging backend that supports context-based correlation.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting publisher performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// PublisherOption defines a functional option for configuring an EventPublisher.
type PublisherOption func(*EventPublisher) error

// WithLogger sets the logger for the EventPublisher.
//
// Debug level: per-event dispatch details (development use)
// Info level: subscriber registrations and publish summaries (production-safe)
// Error level: handler failures that abort a publish.
func WithLogger(logger Logger) PublisherOption {
	return func(p *EventPublisher) error {
		p.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EventPublisher, enabling
// automatic trace/span correlation when the logging backend supports it.
func WithContextualLogger(logger ContextualLogger) PublisherOption {
	return func(p *EventPublisher) error {
		p.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventPublisher.
// The collector will receive publish durations, delivery counts, and handler error counts.
func WithMetrics(collector MetricsCollector) PublisherOption {
	return func(p *EventPublisher) error {
		p.metricsCollector = collector
		return nil
	}
}
