// Package postgresengine provides a PostgreSQL-backed journal engine.
//
// A Journal stores records in a single table, one stream per entity, with
// client-assigned consecutive versions. Appends are guarded by an optimistic
// concurrency check executed inside a single atomic INSERT ... SELECT
// statement, so no transaction or advisory lock is needed.
//
// Construct a Journal with one of the factory methods, depending on the
// database library the client application uses:
//   - NewJournalFromPGXPool
//   - NewJournalFromSQLDB
//   - NewJournalFromSQLX
//
// Logging, metrics, tracing, and the table name are configured with
// functional options.
package postgresengine
