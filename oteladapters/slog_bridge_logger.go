package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/journal"
)

// SlogBridgeLogger implements the journal and domain logging interfaces using
// Go's standard log/slog package. When created via NewSlogBridgeLogger it runs
// on the OpenTelemetry slog bridge, giving automatic trace correlation for the
// context-aware methods. It exposes both the plain and the contextual method
// sets, so the same instance can serve journal.Logger, journal.ContextualLogger,
// and the domain publisher's equivalents.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger backed by the OpenTelemetry slog bridge.
// The bridge emits through the global OpenTelemetry LoggerProvider and
// correlates records with the active trace automatically.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a logger on the supplied slog.Handler
// as-is, without OpenTelemetry trace correlation. Use NewSlogBridgeLogger when
// correlation is wanted; this constructor exists for plugging in a specific
// handler (a test spy, a JSON handler, ...).
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogBridgeLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogBridgeLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogBridgeLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogBridgeLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// DebugContext logs a debug message with context.
func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext logs an info message with context.
func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext logs a warning message with context.
func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext logs an error message with context.
func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ journal.Logger = (*SlogBridgeLogger)(nil)
var _ journal.ContextualLogger = (*SlogBridgeLogger)(nil)
var _ domain.Logger = (*SlogBridgeLogger)(nil)
var _ domain.ContextualLogger = (*SlogBridgeLogger)(nil)
