// Package config provides PostgreSQL connection configuration for journal testing.
//
// Settings are read from the environment via struct tags, with defaults that
// match the local docker-compose setup so tests run out of the box while CI
// can point them elsewhere:
//
//	JOURNAL_TEST_DSN: PostgreSQL DSN for the test database
//	JOURNAL_TEST_TABLE: journal table name
//	JOURNAL_TEST_ADAPTER: adapter to test against (pgx.pool, sql.db, sqlx.db)
//
// Factory functions build ready-to-use connections for all supported
// adapters (pgx.Pool, sql.DB, sqlx.DB) with pool settings tuned for testing.
// The connections are opened lazily so callers can probe reachability and
// skip gracefully when no database is available.
package config
