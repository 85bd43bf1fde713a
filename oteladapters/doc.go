// Package oteladapters provides OpenTelemetry-backed implementations of the
// journal and domain observability interfaces.
//
// The adapters give users plug-and-play logging, metrics, and tracing without
// writing the interface glue themselves: the slog bridge logger correlates log
// records with the active trace, the metrics collector maps the collector
// interface onto OpenTelemetry instruments, and the tracing collector wraps
// OpenTelemetry spans behind journal.SpanContext.
package oteladapters
