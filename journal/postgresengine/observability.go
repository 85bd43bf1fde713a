package postgresengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/journal"
)

/*** Logging helper methods, preferring the contextual logger when both are configured ***/

func (j Journal) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	msg := logMsgSQLExecuted + action

	if j.contextualLogger != nil {
		j.contextualLogger.DebugContext(ctx, msg, logAttrQuery, sqlQuery, logAttrDurationMS, durationToMilliseconds(duration))

		return
	}

	if j.logger != nil {
		j.logger.Debug(msg, logAttrQuery, sqlQuery, logAttrDurationMS, durationToMilliseconds(duration))
	}
}

func (j Journal) logOperation(ctx context.Context, operation string, args ...any) {
	msg := logMsgOperation + operation

	if j.contextualLogger != nil {
		j.contextualLogger.InfoContext(ctx, msg, args...)

		return
	}

	if j.logger != nil {
		j.logger.Info(msg, args...)
	}
}

func (j Journal) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := make([]any, 0, len(args)+2)
	allArgs = append(allArgs, logAttrError, err.Error())
	allArgs = append(allArgs, args...)

	if j.contextualLogger != nil {
		j.contextualLogger.ErrorContext(ctx, msg, allArgs...)

		return
	}

	if j.logger != nil {
		j.logger.Error(msg, allArgs...)
	}
}

func (j Journal) logWarn(msg string, args ...any) {
	if j.contextualLogger != nil {
		j.contextualLogger.WarnContext(context.Background(), msg, args...)

		return
	}

	if j.logger != nil {
		j.logger.Warn(msg, args...)
	}
}

// durationToMilliseconds converts a duration to milliseconds with 3 decimal places (microsecond precision).
func durationToMilliseconds(duration time.Duration) float64 {
	return math.Round(float64(duration.Nanoseconds())/1e6*1000) / 1000
}

/*** Metrics helper methods, preferring context-aware recording when the collector supports it ***/

func (j Journal) recordDurationMetrics(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation string,
	status string,
) {
	if j.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrStatus:    status,
	}

	if contextual, ok := j.metricsCollector.(journal.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metricName, duration, labels)

		return
	}

	j.metricsCollector.RecordDuration(metricName, duration, labels)
}

func (j Journal) recordValueMetrics(
	ctx context.Context,
	metricName string,
	value float64,
	operation string,
	status string,
) {
	if j.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrStatus:    status,
	}

	if contextual, ok := j.metricsCollector.(journal.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metricName, value, labels)

		return
	}

	j.metricsCollector.RecordValue(metricName, value, labels)
}

func (j Journal) recordErrorMetrics(ctx context.Context, operation string, errorType string) {
	if j.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrErrorType: errorType,
	}

	if contextual, ok := j.metricsCollector.(journal.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricDatabaseErrors, labels)

		return
	}

	j.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
}

func (j Journal) recordConcurrencyConflictMetrics(ctx context.Context, operation string) {
	if j.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
	}

	if contextual, ok := j.metricsCollector.(journal.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metricConcurrencyConflicts, labels)

		return
	}

	j.metricsCollector.IncrementCounter(metricConcurrencyConflicts, labels)
}

/*** Tracing helper methods ***/

func (j Journal) startTraceSpan(
	ctx context.Context,
	spanName string,
	attrs map[string]string,
) (context.Context, journal.SpanContext) {
	if j.tracingCollector == nil {
		return ctx, nil
	}

	return j.tracingCollector.StartSpan(ctx, spanName, attrs)
}

func (j Journal) finishTraceSpan(span journal.SpanContext, status string, attrs map[string]string) {
	if j.tracingCollector == nil || span == nil {
		return
	}

	j.tracingCollector.FinishSpan(span, status, attrs)
}

func (j Journal) startQuerySpan(ctx context.Context) (context.Context, journal.SpanContext) {
	return j.startTraceSpan(ctx, spanNameQuery, map[string]string{
		spanAttrOperation: operationQuery,
	})
}

func (j Journal) finishQuerySpanSuccess(
	span journal.SpanContext,
	recordCount int,
	streamVersion journal.Version,
	duration time.Duration,
) {
	j.finishTraceSpan(span, statusSuccess, map[string]string{
		spanAttrRecordCount:   strconv.Itoa(recordCount),
		spanAttrStreamVersion: strconv.FormatUint(streamVersion, 10),
		spanAttrDurationMS:    strconv.FormatFloat(durationToMilliseconds(duration), 'f', -1, 64),
	})
}

func (j Journal) finishQuerySpanError(span journal.SpanContext, errorType string, duration time.Duration) {
	attrs := map[string]string{
		spanAttrErrorType: errorType,
	}

	if duration > 0 {
		attrs[spanAttrDurationMS] = strconv.FormatFloat(durationToMilliseconds(duration), 'f', -1, 64)
	}

	j.finishTraceSpan(span, statusError, attrs)
}

func (j Journal) startAppendSpan(
	ctx context.Context,
	entityID domain.EntityID,
	records journal.Records,
	expectedVersion journal.Version,
) (context.Context, journal.SpanContext) {
	return j.startTraceSpan(ctx, spanNameAppend, map[string]string{
		spanAttrOperation:       operationAppend,
		spanAttrEntityID:        entityID.String(),
		spanAttrEventType:       records[0].EventType,
		spanAttrRecordCount:     strconv.Itoa(len(records)),
		spanAttrExpectedVersion: strconv.FormatUint(expectedVersion, 10),
	})
}

func (j Journal) finishAppendSpanSuccess(span journal.SpanContext, rowsAffected int64, duration time.Duration) {
	j.finishTraceSpan(span, statusSuccess, map[string]string{
		spanAttrRowsAffected: strconv.FormatInt(rowsAffected, 10),
		spanAttrDurationMS:   strconv.FormatFloat(durationToMilliseconds(duration), 'f', -1, 64),
	})
}

func (j Journal) finishAppendSpanError(span journal.SpanContext, errorType string, extraAttrs map[string]string) {
	attrs := map[string]string{
		spanAttrErrorType: errorType,
	}

	for key, value := range extraAttrs {
		attrs[key] = value
	}

	j.finishTraceSpan(span, statusError, attrs)
}
