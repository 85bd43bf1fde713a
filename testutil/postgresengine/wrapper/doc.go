// Package wrapper provides multi-adapter test harnesses for the Postgres journal.
//
// A Wrapper abstracts over the supported database adapters (pgx.Pool, sql.DB,
// sqlx.DB) so the same test suite runs unchanged against each driver. The
// adapter is selected via the JOURNAL_TEST_ADAPTER environment variable, see
// the config package for all settings.
//
// CreateWrapperWithTestConfig skips the calling test when the configured
// database is not reachable, so the integration suite degrades gracefully on
// machines without a local Postgres.
package wrapper
