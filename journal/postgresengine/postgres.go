package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/journal"
	"github.com/modelfirst/tactical-ddd-go/journal/postgresengine/internal/adapters"
)

const (
	defaultTableName             = "journal"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildRecordFailed      = "failed to build record from database row"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during record append"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgQueryCompleted         = "query completed"
	logMsgRecordsAppended        = "records appended"
	logMsgConcurrencyConflict    = "concurrency conflict detected"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrEventType             = "event_type"
	logAttrRecordCount           = "record_count"
	logAttrStreamVersion         = "stream_version"
	logAttrDurationMS            = "duration_ms"
	logAttrExpectedRecords       = "expected_records"
	logAttrRowsAffected          = "rows_affected"
	logAttrExpectedVersion       = "expected_version"
	logAttrEntityID              = "entity_id"
	logActionQuery               = "query"
	logActionAppend              = "append"
	colEntityID                  = "entity_id"
	colVersion                   = "version"
	colEventType                 = "event_type"
	colOccurredAt                = "occurred_at"
	colPayload                   = "payload"
	colMetadata                  = "metadata"
	cteContext                   = "context"
	cteVals                      = "vals"
	dialectPostgres              = "postgres"
	aliasMaxVersion              = "max_version"
	castUUID                     = "?::uuid"
	castBigint                   = "?::bigint"
	castText                     = "?::text"
	castTimestamp                = "?::timestamp with time zone"
	castJsonb                    = "?::jsonb"
)

const (
	metricQueryDuration        = "journal_query_duration_seconds"
	metricAppendDuration       = "journal_append_duration_seconds"
	metricRecordsQueried       = "journal_records_queried"
	metricRecordsAppended      = "journal_records_appended"
	metricDatabaseErrors       = "journal_database_errors_total"
	metricConcurrencyConflicts = "journal_concurrency_conflicts_total"
	spanNameQuery              = "journal.query"
	spanNameAppend             = "journal.append"
	spanAttrOperation          = "operation"
	spanAttrStatus             = "status"
	spanAttrErrorType          = "error_type"
	spanAttrRecordCount        = "record_count"
	spanAttrStreamVersion      = "stream_version"
	spanAttrExpectedVersion    = "expected_version"
	spanAttrEntityID           = "entity_id"
	spanAttrEventType          = "event_type"
	spanAttrRowsAffected       = "rows_affected"
	spanAttrDurationMS         = "duration_ms"
	operationQuery             = "query"
	operationAppend            = "append"
	statusSuccess              = "success"
	statusError                = "error"
	errorTypeBuildQuery        = "build_query"
	errorTypeDatabase          = "database"
	errorTypeScan              = "scan"
	errorTypeBuildRecord       = "build_record"
	errorTypeRowsAffected      = "rows_affected"
	errorTypeConcurrency       = "concurrency_conflict"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// Journal is a Postgres-backed append-only store for journal records.
// It keeps one stream per entity, guarded by an optimistic version check,
// and leverages a database adapter with customizable logging, metrics,
// tracing, and table configuration.
type Journal struct {
	db               adapters.DBAdapter
	tableName        string
	logger           journal.Logger
	contextualLogger journal.ContextualLogger
	metricsCollector journal.MetricsCollector
	tracingCollector journal.TracingCollector
}

type queryResultRow struct {
	eventType  string
	payload    []byte
	metadata   []byte
	occurredAt time.Time
	version    journal.Version
}

// NewJournalFromPGXPool creates a new Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnectionSupplied
	}

	j := Journal{
		db:        adapters.NewPGXAdapter(db),
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnectionSupplied
	}

	j := Journal{
		db:        adapters.NewSQLAdapter(db),
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnectionSupplied
	}

	j := Journal{
		db:        adapters.NewSQLXAdapter(db),
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// Events retrieves records from the Postgres journal based on the provided
// journal.Selection and returns them as journal.Records together with the
// stream's current journal.Version at the time of the query (the highest
// version among the matched records, 0 when nothing matched). A selection
// that filters by event type or time window can therefore understate the
// stream's true version; derive an expectedVersion for Append only from a
// selection that matches every record of the entity's stream.
//
// Single-entity selections are ordered by version; selections across all
// entities are ordered by occurred-at time, then version.
func (j Journal) Events(ctx context.Context, selection journal.Selection) (
	journal.Records,
	journal.Version,
	error,
) {

	var empty journal.Records

	ctx, span := j.startQuerySpan(ctx)

	sqlQuery, buildQueryErr := j.buildSelectQuery(selection)
	if buildQueryErr != nil {
		j.logError(ctx, logMsgBuildSelectQueryFailed, buildQueryErr)
		j.recordErrorMetrics(ctx, operationQuery, errorTypeBuildQuery)
		j.finishQuerySpanError(span, errorTypeBuildQuery, 0)

		return empty, 0, buildQueryErr
	}

	rows, duration, queryErr := j.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		j.recordDurationMetrics(ctx, metricQueryDuration, duration, operationQuery, statusError)
		j.recordErrorMetrics(ctx, operationQuery, errorTypeDatabase)
		j.finishQuerySpanError(span, errorTypeDatabase, duration)

		return empty, 0, queryErr
	}
	defer j.closeRows(rows)

	records, streamVersion, scanErr := j.processQueryResults(ctx, rows)
	if scanErr != nil {
		errorType := errorTypeScan
		if errors.Is(scanErr, journal.ErrBuildingRecordFailed) {
			errorType = errorTypeBuildRecord
		}

		j.recordDurationMetrics(ctx, metricQueryDuration, duration, operationQuery, statusError)
		j.recordErrorMetrics(ctx, operationQuery, errorType)
		j.finishQuerySpanError(span, errorType, duration)

		return empty, 0, scanErr
	}

	j.logOperation(ctx,
		logMsgQueryCompleted,
		logAttrRecordCount, len(records),
		logAttrStreamVersion, streamVersion,
		logAttrDurationMS, durationToMilliseconds(duration))

	j.recordDurationMetrics(ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	j.recordValueMetrics(ctx, metricRecordsQueried, float64(len(records)), operationQuery, statusSuccess)
	j.finishQuerySpanSuccess(span, len(records), streamVersion, duration)

	return records, streamVersion, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (j Journal) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(ctx, sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		j.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)

		return nil, duration, errors.Join(journal.ErrQueryingRecordsFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (j Journal) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		j.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// processQueryResults processes database rows and converts them to records.
func (j Journal) processQueryResults(ctx context.Context, rows adapters.DBRows) (
	journal.Records,
	journal.Version,
	error,
) {

	var empty journal.Records
	result := queryResultRow{}
	records := make(journal.Records, 0)
	streamVersion := journal.Version(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.version)
		if rowScanErr != nil {
			j.logError(ctx, logMsgScanRowFailed, rowScanErr)

			return empty, 0, errors.Join(journal.ErrScanningDBRowFailed, rowScanErr)
		}

		record, buildRecordErr := journal.BuildRecord(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildRecordErr != nil {
			j.logError(ctx, logMsgBuildRecordFailed, buildRecordErr, logAttrEventType, result.eventType)

			return empty, 0, errors.Join(journal.ErrBuildingRecordFailed, buildRecordErr)
		}

		records = append(records, record)

		if result.version > streamVersion {
			streamVersion = result.version
		}
	}

	return records, streamVersion, nil
}

// Append attempts to append one or multiple journal.Record(s) onto the entity's
// stream, respecting the optimistic concurrency constraint: the stream's current
// highest version must equal expectedVersion at insert time, otherwise nothing is
// written and journal.ErrConcurrencyConflict is returned. The appended records are
// assigned the versions expectedVersion+1 .. expectedVersion+n in the given order,
// within a single atomic statement.
//
// The insert query to append multiple records atomically is heavier than the one
// built to append a single record. One command should typically only produce one
// event; only supply multiple records if you need to append them atomically.
func (j Journal) Append(
	ctx context.Context,
	entityID domain.EntityID,
	expectedVersion journal.Version,
	record journal.Record,
	additionalRecords ...journal.Record,
) error {

	allRecords := journal.Records{record}
	allRecords = append(allRecords, additionalRecords...)

	ctx, span := j.startAppendSpan(ctx, entityID, allRecords, expectedVersion)

	sqlQuery, buildQueryErr := j.buildAppendQuery(ctx, entityID, allRecords, expectedVersion)
	if buildQueryErr != nil {
		j.recordErrorMetrics(ctx, operationAppend, errorTypeBuildQuery)
		j.finishAppendSpanError(span, errorTypeBuildQuery, nil)

		return buildQueryErr
	}

	rowsAffected, duration, execErr := j.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		errorType := errorTypeDatabase
		if errors.Is(execErr, journal.ErrGettingRowsAffectedFailed) {
			errorType = errorTypeRowsAffected
		}

		j.recordDurationMetrics(ctx, metricAppendDuration, duration, operationAppend, statusError)
		j.recordErrorMetrics(ctx, operationAppend, errorType)
		j.finishAppendSpanError(span, errorType, map[string]string{
			spanAttrDurationMS: fmt.Sprintf("%.2f", durationToMilliseconds(duration)),
		})

		return execErr
	}

	if err := j.validateAppendResult(ctx, rowsAffected, len(allRecords), entityID, expectedVersion); err != nil {
		j.recordConcurrencyConflictMetrics(ctx, operationAppend)
		j.finishAppendSpanError(span, errorTypeConcurrency, map[string]string{
			spanAttrExpectedVersion: fmt.Sprintf("%d", expectedVersion),
			spanAttrRowsAffected:    fmt.Sprintf("%d", rowsAffected),
		})

		return err
	}

	j.logOperation(ctx,
		logMsgRecordsAppended,
		logAttrRecordCount, len(allRecords),
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	j.recordDurationMetrics(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	j.recordValueMetrics(ctx, metricRecordsAppended, float64(len(allRecords)), operationAppend, statusSuccess)
	j.finishAppendSpanSuccess(span, rowsAffected, duration)

	return nil
}

// buildAppendQuery builds the appropriate SQL query for single or multiple records.
func (j Journal) buildAppendQuery(
	ctx context.Context,
	entityID domain.EntityID,
	allRecords journal.Records,
	expectedVersion journal.Version,
) (sqlQueryString, error) {

	var sqlQuery sqlQueryString
	var buildQueryErr error

	switch len(allRecords) {
	case 1:
		sqlQuery, buildQueryErr = j.buildInsertQueryForSingleRecord(entityID, allRecords[0], expectedVersion)

	default:
		sqlQuery, buildQueryErr = j.buildInsertQueryForMultipleRecords(entityID, allRecords, expectedVersion)
	}

	if buildQueryErr != nil {
		j.logError(ctx, logMsgBuildInsertQueryFailed, buildQueryErr, logAttrRecordCount, len(allRecords))

		return "", buildQueryErr
	}

	return sqlQuery, nil
}

// executeAppendQuery executes the SQL append query and returns rows affected and duration.
func (j Journal) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	result, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(ctx, sqlQuery, logActionAppend, duration)

	if execErr != nil {
		j.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)

		return 0, duration, errors.Join(journal.ErrAppendingRecordsFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		j.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)

		return 0, duration, errors.Join(journal.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// validateAppendResult checks if the append operation was successful and detects concurrency conflicts.
func (j Journal) validateAppendResult(
	ctx context.Context,
	rowsAffected int64,
	expectedRecordCount int,
	entityID domain.EntityID,
	expectedVersion journal.Version,
) error {

	if rowsAffected < int64(expectedRecordCount) {
		j.logOperation(ctx,
			logMsgConcurrencyConflict,
			logAttrEntityID, entityID.String(),
			logAttrExpectedRecords, expectedRecordCount,
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedVersion, expectedVersion,
		)

		return journal.ErrConcurrencyConflict
	}

	return nil
}

func (j Journal) buildSelectQuery(selection journal.Selection) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.tableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colVersion)

	if _, single := selection.EntityID(); single {
		selectStmt = selectStmt.Order(goqu.I(colVersion).Asc())
	} else {
		selectStmt = selectStmt.Order(goqu.I(colOccurredAt).Asc(), goqu.I(colVersion).Asc())
	}

	selectStmt = j.addWhereClause(selection, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQueryForSingleRecord(
	entityID domain.EntityID,
	record journal.Record,
	expectedVersion journal.Version,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(j.tableName).
		Select(goqu.MAX(colVersion).As(aliasMaxVersion)).
		Where(goqu.Ex{colEntityID: entityID.String()})

	// Define the SELECT for the INSERT
	selectStmt := builder.
		From(cteContext).
		Select(
			goqu.V(entityID.String()),
			goqu.V(expectedVersion+1),
			goqu.V(record.EventType),
			goqu.V(record.OccurredAt),
			goqu.V(record.PayloadJSON),
			goqu.V(record.MetadataJSON),
		).
		Where(goqu.COALESCE(goqu.C(aliasMaxVersion), 0).Eq(goqu.V(expectedVersion)))

	// Finalize the full INSERT query
	insertStmt := builder.
		Insert(j.tableName).
		Cols(colEntityID, colVersion, colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQueryForMultipleRecords(
	entityID domain.EntityID,
	records journal.Records,
	expectedVersion journal.Version,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(j.tableName).
		Select(goqu.MAX(colVersion).As(aliasMaxVersion)).
		Where(goqu.Ex{colEntityID: entityID.String()})

	// Create individual SELECT statements for each record, assigning consecutive versions
	unionStatements := make([]*goqu.SelectDataset, len(records))
	for i, record := range records {
		unionStatements[i] = builder.
			Select(
				goqu.L(castUUID, entityID.String()).As(colEntityID),
				goqu.L(castBigint, expectedVersion+journal.Version(i)+1).As(colVersion),
				goqu.L(castText, record.EventType).As(colEventType),
				goqu.L(castTimestamp, record.OccurredAt).As(colOccurredAt),
				goqu.L(castJsonb, record.PayloadJSON).As(colPayload),
				goqu.L(castJsonb, record.MetadataJSON).As(colMetadata),
			)
	}

	// Combine all SELECT statements with UNION ALL
	valuesStmt := unionStatements[0]
	for i := 1; i < len(unionStatements); i++ {
		valuesStmt = valuesStmt.UnionAll(unionStatements[i])
	}

	// Finalize the full INSERT query
	valsEntityID := fmt.Sprintf("%s.%s", cteVals, colEntityID)
	valsVersion := fmt.Sprintf("%s.%s", cteVals, colVersion)
	valsEventType := fmt.Sprintf("%s.%s", cteVals, colEventType)
	valsOccurredAt := fmt.Sprintf("%s.%s", cteVals, colOccurredAt)
	valsPayload := fmt.Sprintf("%s.%s", cteVals, colPayload)
	valsMetadata := fmt.Sprintf("%s.%s", cteVals, colMetadata)

	insertStmt := builder.
		Insert(j.tableName).
		Cols(colEntityID, colVersion, colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(valsEntityID, valsVersion, valsEventType, valsOccurredAt, valsPayload, valsMetadata).
				Where(goqu.COALESCE(goqu.C(aliasMaxVersion), 0).Eq(goqu.V(expectedVersion))),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) addWhereClause(selection journal.Selection, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	expressions := make([]goqu.Expression, 0)

	if entityID, single := selection.EntityID(); single {
		expressions = append(expressions, goqu.Ex{colEntityID: entityID.String()})
	}

	if eventTypes := selection.EventTypes(); len(eventTypes) > 0 {
		eventTypeExpressions := make([]goqu.Expression, 0, len(eventTypes))

		for _, eventType := range eventTypes {
			eventTypeExpressions = append(eventTypeExpressions, goqu.Ex{colEventType: eventType})
		}

		// event types must always be filtered with OR ;-)
		expressions = append(expressions, goqu.Or(eventTypeExpressions...))
	}

	if occurredFrom, hasFrom := selection.OccurredFrom(); hasFrom {
		expressions = append(expressions, goqu.C(colOccurredAt).Gte(occurredFrom))
	}

	if occurredUntil, hasUntil := selection.OccurredUntil(); hasUntil {
		expressions = append(expressions, goqu.C(colOccurredAt).Lte(occurredUntil))
	}

	if len(expressions) == 0 {
		return selectStmt
	}

	return selectStmt.Where(goqu.And(expressions...))
}
