// Package observability provides test doubles for the dependency-free
// observability interfaces: a slog.Handler spy, a contextual logger spy,
// and metrics and tracing collectors that capture calls for inspection.
//
// The collectors can be constructed with recordCalls set to false, which
// turns them into no-ops for benchmarks that need realistic wiring without
// measurement overhead.
package observability
