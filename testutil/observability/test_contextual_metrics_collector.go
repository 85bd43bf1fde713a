package observability

import (
	"context"
	"sync"
	"time"

	"github.com/modelfirst/tactical-ddd-go/journal"
)

// TestContextualMetricsCollector is a ContextualMetricsCollector spy. It captures
// the same records as TestMetricsCollector and additionally counts how many
// recordings arrived through the context-aware methods, so tests can assert
// that an instrumented component routes its metrics contextually.
type TestContextualMetricsCollector struct {
	*TestMetricsCollector
	mu              sync.Mutex
	contextualCalls int
}

// Compile-time check that the spy satisfies the contextual interface.
var _ journal.ContextualMetricsCollector = (*TestContextualMetricsCollector)(nil)

// NewTestContextualMetricsCollector creates a new TestContextualMetricsCollector.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewTestContextualMetricsCollector(recordCalls bool) *TestContextualMetricsCollector {
	return &TestContextualMetricsCollector{
		TestMetricsCollector: NewTestMetricsCollector(recordCalls),
	}
}

// RecordDurationContext implements the ContextualMetricsCollector interface.
func (c *TestContextualMetricsCollector) RecordDurationContext(
	_ context.Context,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	c.countContextualCall()
	c.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements the ContextualMetricsCollector interface.
func (c *TestContextualMetricsCollector) IncrementCounterContext(
	_ context.Context,
	metric string,
	labels map[string]string,
) {
	c.countContextualCall()
	c.IncrementCounter(metric, labels)
}

// RecordValueContext implements the ContextualMetricsCollector interface.
func (c *TestContextualMetricsCollector) RecordValueContext(
	_ context.Context,
	metric string,
	value float64,
	labels map[string]string,
) {
	c.countContextualCall()
	c.RecordValue(metric, value, labels)
}

// GetContextualCallCount returns how many recordings arrived through the
// context-aware methods.
func (c *TestContextualMetricsCollector) GetContextualCallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.contextualCalls
}

func (c *TestContextualMetricsCollector) countContextualCall() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.contextualCalls++
}
