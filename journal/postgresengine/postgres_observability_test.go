package postgresengine_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/modelfirst/tactical-ddd-go/journal"
	"github.com/modelfirst/tactical-ddd-go/journal/postgresengine"
	. "github.com/modelfirst/tactical-ddd-go/testutil/fixtures" //nolint:revive
	. "github.com/modelfirst/tactical-ddd-go/testutil/observability" //nolint:revive
	"github.com/modelfirst/tactical-ddd-go/testutil/postgresengine/config"
	. "github.com/modelfirst/tactical-ddd-go/testutil/postgresengine/wrapper" //nolint:revive
)

func Test_Observability_Journal_WithLogger_LogsQueries(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logHandler := NewLogHandlerSpy(false)
	logger := slog.New(logHandler)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(logger))
	defer w.Close()
	j := w.GetJournal()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	_, _, err := j.Events(ctxWithTimeout, selection)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 2, logHandler.GetRecordCount(), "query should log exactly one SQL statement and one operational statement")
	assert.True(t,
		logHandler.HasDebugLogWithMessage("executed sql for: query").
			WithDurationMS().
			Assert(), "should log the executed SQL with duration_ms attribute",
	)
	assert.True(t,
		logHandler.HasInfoLogWithMessage("journal operation: query completed").
			WithDurationMS().
			WithRecordCount().
			WithStreamVersion().
			Assert(), "should log query completion with duration, record count, and stream version",
	)
}

func Test_Observability_Journal_WithLogger_LogsAppends(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logHandler := NewLogHandlerSpy(false)
	logger := slog.New(logHandler)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(logger))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	err := j.Append(
		ctxWithTimeout,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctxWithTimeout, j, selection),
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 4, logHandler.GetRecordCount(), "query and append should log exactly one SQL statement and one operational statement each")
	assert.True(t,
		logHandler.HasDebugLogWithMessage("executed sql for: append").
			WithDurationMS().
			Assert(), "should log the executed SQL with duration_ms attribute",
	)
	assert.True(t,
		logHandler.HasInfoLogWithMessage("journal operation: records appended").
			WithDurationMS().
			WithRecordCount().
			Assert(), "should log append completion with duration and record count",
	)
}

func Test_Observability_Journal_WithLogger_LogsConcurrencyConflicts(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logHandler := NewLogHandlerSpy(false)
	logger := slog.New(logHandler)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithLogger(logger))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)

	err := j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)
	assert.NoError(t, err)

	logHandler.Reset() // only capture the conflict

	// act, the stream is at version 1 now
	err = j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureMoneyDeposited(t, accountID, 10_000, fakeClock)),
	)

	// assert
	assert.ErrorIs(t, err, journal.ErrConcurrencyConflict)
	assert.Equal(t, 2, logHandler.GetRecordCount(), "conflict should log exactly one SQL statement and one operational statement")
	assert.True(t,
		logHandler.HasInfoLogWithMessage("journal operation: concurrency conflict detected").
			WithExpectedRecords().
			WithRowsAffected().
			WithExpectedVersion().
			Assert(), "should log the conflict with expected records, rows affected, and expected version",
	)
}

func Test_Observability_Journal_WithContextualLogger_IsPreferredOverPlainLogger(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logHandler := NewLogHandlerSpy(false)
	contextualLogger := NewTestContextualLogger(true)

	w := CreateWrapperWithTestConfig(t,
		postgresengine.WithLogger(slog.New(logHandler)),
		postgresengine.WithContextualLogger(contextualLogger),
	)
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	err := j.Append(
		ctxWithTimeout,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctxWithTimeout, j, selection),
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 0, logHandler.GetRecordCount(), "the plain logger should stay silent when a contextual logger is configured")
	assert.Equal(t, 4, contextualLogger.GetTotalRecordCount())
	assert.True(t, contextualLogger.HasDebugLog("executed sql for: query"))
	assert.True(t, contextualLogger.HasDebugLog("executed sql for: append"))
	assert.True(t, contextualLogger.HasInfoLog("journal operation: query completed"))
	assert.True(t, contextualLogger.HasInfoLog("journal operation: records appended"))
}

func Test_Observability_Journal_WithMetrics_RecordsQueryAndAppendMetrics(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metricsCollector := NewTestMetricsCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithMetrics(metricsCollector))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	err := j.Append(
		ctxWithTimeout,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctxWithTimeout, j, selection),
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)

	// assert
	assert.NoError(t, err)
	assert.True(t,
		metricsCollector.HasDurationRecordForMetric("journal_query_duration_seconds").
			WithOperation("query").
			WithStatus("success").
			Assert(), "should record the query duration",
	)
	assert.True(t,
		metricsCollector.HasValueRecordForMetric("journal_records_queried").
			WithOperation("query").
			WithStatus("success").
			Assert(), "should record the number of queried records",
	)
	assert.True(t,
		metricsCollector.HasDurationRecordForMetric("journal_append_duration_seconds").
			WithOperation("append").
			WithStatus("success").
			Assert(), "should record the append duration",
	)
	assert.True(t,
		metricsCollector.HasValueRecordForMetric("journal_records_appended").
			WithOperation("append").
			WithStatus("success").
			Assert(), "should record the number of appended records",
	)
}

func Test_Observability_Journal_WithContextualMetrics_UsesContextAwareRecording(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metricsCollector := NewTestContextualMetricsCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithContextualMetrics(metricsCollector))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	err := j.Append(
		ctxWithTimeout,
		accountID,
		QueryStreamVersionBeforeAppend(t, ctxWithTimeout, j, selection),
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)

	// assert
	assert.NoError(t, err)
	assert.True(t,
		metricsCollector.HasDurationRecordForMetric("journal_append_duration_seconds").
			WithOperation("append").
			WithStatus("success").
			Assert(), "should record the append duration",
	)
	assert.Equal(t,
		metricsCollector.GetDurationRecordCount()+
			metricsCollector.GetCounterRecordCount()+
			metricsCollector.GetValueRecordCount(),
		metricsCollector.GetContextualCallCount(),
		"every recording should arrive through the context-aware methods",
	)
}

func Test_Observability_Journal_WithMetrics_CountsConcurrencyConflicts(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metricsCollector := NewTestMetricsCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithMetrics(metricsCollector))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)

	err := j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)
	assert.NoError(t, err)

	metricsCollector.Reset() // only capture the conflict

	// act, the stream is at version 1 now
	err = j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureMoneyDeposited(t, accountID, 10_000, fakeClock)),
	)

	// assert
	assert.ErrorIs(t, err, journal.ErrConcurrencyConflict)
	assert.Equal(t, 1, metricsCollector.CountCounterRecordsForMetric("journal_concurrency_conflicts_total"))
	assert.True(t,
		metricsCollector.HasCounterRecordForMetric("journal_concurrency_conflicts_total").
			WithOperation("append").
			Assert(), "should count the conflict for the append operation",
	)
}

func Test_Observability_Journal_WithMetrics_CountsDatabaseErrors(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := CreateWrapperWithTestConfig(t) // skips the test when no database is reachable
	defer w.Close()

	metricsCollector := NewTestMetricsCollector(true)

	db := config.PostgresSQLDBConfig()
	defer func() { _ = db.Close() }()

	j, err := postgresengine.NewJournalFromSQLDB(db,
		postgresengine.WithTableName("journal_missing_table"),
		postgresengine.WithMetrics(metricsCollector),
	)
	assert.NoError(t, err)

	// arrange
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	_, _, queryErr := j.Events(ctxWithTimeout, selection)

	// assert
	assert.Error(t, queryErr)
	assert.True(t,
		metricsCollector.HasCounterRecordForMetric("journal_database_errors_total").
			WithOperation("query").
			WithErrorType("database").
			Assert(), "should count the database error for the query operation",
	)
	assert.True(t,
		metricsCollector.HasDurationRecordForMetric("journal_query_duration_seconds").
			WithOperation("query").
			WithStatus("error").
			Assert(), "should record the failed query duration with error status",
	)
}

func Test_Observability_Journal_WithTracing_TracesQueries(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tracingCollector := NewTestTracingCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithTracing(tracingCollector))
	defer w.Close()
	j := w.GetJournal()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)

	// act
	_, _, err := j.Events(ctxWithTimeout, selection)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, tracingCollector.CountSpanRecordsForName("journal.query"))
	assert.True(t,
		tracingCollector.HasSpanRecordForName("journal.query").
			WithStatus("success").
			WithStartAttribute("operation", "query").
			Assert(), "should finish the query span with success status",
	)
}

func Test_Observability_Journal_WithTracing_TracesAppends(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tracingCollector := NewTestTracingCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithTracing(tracingCollector))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)
	selection := SelectionAllEventTypesForOneAccount(accountID)
	streamVersionBeforeAppend := QueryStreamVersionBeforeAppend(t, ctxWithTimeout, j, selection)

	tracingCollector.Reset() // only capture the append

	// act
	err := j.Append(
		ctxWithTimeout,
		accountID,
		streamVersionBeforeAppend,
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, tracingCollector.GetSpanRecordCount())
	assert.True(t,
		tracingCollector.HasSpanRecordForName("journal.append").
			WithStatus("success").
			WithStartAttribute("operation", "append").
			WithStartAttribute("entity_id", accountID.String()).
			WithStartAttribute("record_count", "1").
			WithEndAttribute("rows_affected", "1").
			Assert(), "should finish the append span with success status and row count",
	)
}

func Test_Observability_Journal_WithTracing_TracesConcurrencyConflicts(t *testing.T) {
	// setup
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tracingCollector := NewTestTracingCollector(true)

	w := CreateWrapperWithTestConfig(t, postgresengine.WithTracing(tracingCollector))
	defer w.Close()
	j := w.GetJournal()

	fakeClock := time.Unix(0, 0).UTC()

	// arrange
	CleanUp(t, w)
	accountID := GivenUniqueID(t)

	err := j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureAccountOpened(accountID, fakeClock)),
	)
	assert.NoError(t, err)

	tracingCollector.Reset() // only capture the conflict

	// act, the stream is at version 1 now
	err = j.Append(
		ctxWithTimeout,
		accountID,
		0,
		ToRecord(t, FixtureMoneyDeposited(t, accountID, 10_000, fakeClock)),
	)

	// assert
	assert.ErrorIs(t, err, journal.ErrConcurrencyConflict)
	assert.True(t,
		tracingCollector.HasSpanRecordForName("journal.append").
			WithStatus("error").
			WithEndAttribute("error_type", "concurrency_conflict").
			WithEndAttribute("rows_affected", "0").
			Assert(), "should finish the append span with error status and conflict attributes",
	)
}
