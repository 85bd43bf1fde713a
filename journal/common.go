package journal

import "errors"

// Version counts the records appended to a stream so far. A new stream has
// version 0 and the nth appended record carries version n.
type Version = uint64

// Sentinel errors shared by journal engines.
var (
	ErrConcurrencyConflict           = errors.New("concurrency conflict, no rows were affected")
	ErrEmptyTableNameSupplied        = errors.New("empty table name supplied")
	ErrNilDatabaseConnectionSupplied = errors.New("nil database connection supplied")
	ErrBuildingQueryFailed           = errors.New("building the query failed")
	ErrQueryingRecordsFailed         = errors.New("querying records failed")
	ErrScanningDBRowFailed           = errors.New("scanning the database row failed")
	ErrBuildingRecordFailed          = errors.New("building the record failed")
	ErrAppendingRecordsFailed        = errors.New("appending records failed")
	ErrGettingRowsAffectedFailed     = errors.New("getting rows affected failed")
)
