package postgresengine

import (
	"github.com/modelfirst/tactical-ddd-go/journal"
)

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets a custom table name for the Journal.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return journal.ErrEmptyTableNameSupplied
		}

		j.tableName = tableName

		return nil
	}
}

// WithLogger sets a logger for the Journal.
// Debug level logs the executed SQL statements with their duration.
// Info level logs operational completion with summary values.
// Warn level logs recoverable issues like failing to close database rows.
// Error level logs all failing operations.
func WithLogger(logger journal.Logger) Option {
	return func(j *Journal) error {
		j.logger = logger

		return nil
	}
}

// WithContextualLogger sets a contextual logger for the Journal.
// When set, it is preferred over a plain logger so that log records
// carry trace correlation from the supplied context.
func WithContextualLogger(logger journal.ContextualLogger) Option {
	return func(j *Journal) error {
		j.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets a metrics collector for the Journal.
// If the collector also implements journal.ContextualMetricsCollector,
// the context-aware methods are used for exemplar support.
func WithMetrics(collector journal.MetricsCollector) Option {
	return func(j *Journal) error {
		j.metricsCollector = collector

		return nil
	}
}

// WithContextualMetrics sets a context-aware metrics collector for the Journal.
// It differs from WithMetrics only in making the contextual contract explicit
// at the call site: every recording carries the operation context, so metric
// backends can correlate exemplars with the active trace.
func WithContextualMetrics(collector journal.ContextualMetricsCollector) Option {
	return func(j *Journal) error {
		j.metricsCollector = collector

		return nil
	}
}

// WithTracing sets a tracing collector for the Journal. The collector's
// StartSpan receives the operation context, so spans nest under the caller's
// active trace without a separate contextual variant.
func WithTracing(collector journal.TracingCollector) Option {
	return func(j *Journal) error {
		j.tracingCollector = collector

		return nil
	}
}
