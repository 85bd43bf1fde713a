package wrapper

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfirst/tactical-ddd-go/journal/postgresengine"
	"github.com/modelfirst/tactical-ddd-go/testutil/postgresengine/config"
)

const (
	defaultTableName = "journal"
	pingTimeout      = 2 * time.Second
)

// Wrapper abstracts over the supported database adapters so tests run
// unchanged against pgx.Pool, sql.DB, and sqlx.DB backed journals.
type Wrapper interface {
	GetJournal() postgresengine.Journal
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool      *pgxpool.Pool
	j         postgresengine.Journal
	tableName string
}

func (w *PGXPoolWrapper) GetJournal() postgresengine.Journal {
	return w.j
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db        *sql.DB
	j         postgresengine.Journal
	tableName string
}

func (w *SQLDBWrapper) GetJournal() postgresengine.Journal {
	return w.j
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db        *sqlx.DB
	j         postgresengine.Journal
	tableName string
}

func (w *SQLXWrapper) GetJournal() postgresengine.Journal {
	return w.j
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the wrapper selected by the environment
// and makes sure the journal table exists. The calling test is skipped when
// the configured database is not reachable.
func CreateWrapperWithTestConfig(t testing.TB, extraOptions ...postgresengine.Option) Wrapper {
	t.Helper()

	cfg := config.MustLoad()

	var options []postgresengine.Option
	if cfg.TableName != defaultTableName {
		options = append(options, postgresengine.WithTableName(cfg.TableName))
	}
	options = append(options, extraOptions...)

	var w Wrapper

	switch strings.ToLower(cfg.AdapterType) {
	case config.AdapterPGXPool, "":
		pool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolConfig())
		require.NoError(t, err, "error connecting to DB pool in test setup")
		skipUnlessReachable(t, pool.Ping, pool.Close)

		j, err := postgresengine.NewJournalFromPGXPool(pool, options...)
		require.NoError(t, err, "error creating journal")

		w = &PGXPoolWrapper{pool: pool, j: j, tableName: cfg.TableName}

	case config.AdapterSQLDB:
		db := config.PostgresSQLDBConfig()
		skipUnlessReachable(t, db.PingContext, func() { _ = db.Close() })

		j, err := postgresengine.NewJournalFromSQLDB(db, options...)
		require.NoError(t, err, "error creating journal")

		w = &SQLDBWrapper{db: db, j: j, tableName: cfg.TableName}

	case config.AdapterSQLX:
		db := config.PostgresSQLXConfig()
		skipUnlessReachable(t, db.PingContext, func() { _ = db.Close() })

		j, err := postgresengine.NewJournalFromSQLX(db, options...)
		require.NoError(t, err, "error creating journal")

		w = &SQLXWrapper{db: db, j: j, tableName: cfg.TableName}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", cfg.AdapterType))
	}

	CreateJournalTable(t, w)

	return w
}

// CreateJournalTable creates the journal table and its indexes when missing.
func CreateJournalTable(t testing.TB, w Wrapper) {
	t.Helper()

	tableName := tableNameOf(w)

	statements := []string{
		fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (
				entity_id   UUID                     NOT NULL,
				version     BIGINT                   NOT NULL,
				event_type  TEXT                     NOT NULL,
				occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
				payload     JSONB                    NOT NULL,
				metadata    JSONB                    NOT NULL,
				UNIQUE (entity_id, version)
			)`, tableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_event_type_idx ON %s (event_type)`, tableName, tableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_occurred_at_idx ON %s (occurred_at)`, tableName, tableName),
	}

	for _, statement := range statements {
		execSQL(t, w, statement)
	}
}

// CleanUp removes all records from the journal table for test isolation.
func CleanUp(t testing.TB, w Wrapper) {
	t.Helper()

	execSQL(t, w, fmt.Sprintf(`TRUNCATE TABLE %s`, tableNameOf(w)))
}

// GetGreatestOccurredAtTimeFromDB gets the maximum occurred_at time from the journal table.
func GetGreatestOccurredAtTimeFromDB(t testing.TB, w Wrapper) time.Time {
	t.Helper()

	query := fmt.Sprintf(`SELECT max(occurred_at) FROM %s`, tableNameOf(w))

	var greatestOccurredAtTime time.Time
	var err error

	switch e := w.(type) {
	case *PGXPoolWrapper:
		row := e.pool.QueryRow(context.Background(), query)
		err = row.Scan(&greatestOccurredAtTime)

	case *SQLDBWrapper:
		row := e.db.QueryRow(query)
		err = row.Scan(&greatestOccurredAtTime)

	case *SQLXWrapper:
		row := e.db.QueryRow(query)
		err = row.Scan(&greatestOccurredAtTime)

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}

	assert.NoError(t, err, "error in arranging test data")

	return greatestOccurredAtTime
}

func tableNameOf(w Wrapper) string {
	switch e := w.(type) {
	case *PGXPoolWrapper:
		return e.tableName
	case *SQLDBWrapper:
		return e.tableName
	case *SQLXWrapper:
		return e.tableName
	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}
}

func execSQL(t testing.TB, w Wrapper, statement string) {
	t.Helper()

	switch e := w.(type) {
	case *PGXPoolWrapper:
		_, err := e.pool.Exec(context.Background(), statement)
		assert.NoError(t, err, "error executing statement on the journal table")

	case *SQLDBWrapper:
		_, err := e.db.Exec(statement)
		assert.NoError(t, err, "error executing statement on the journal table")

	case *SQLXWrapper:
		_, err := e.db.Exec(statement)
		assert.NoError(t, err, "error executing statement on the journal table")

	default:
		panic(fmt.Sprintf("unsupported wrapper type: %T", e))
	}
}

func skipUnlessReachable(t testing.TB, ping func(ctx context.Context) error, closeConn func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		closeConn()
		t.Skipf("test database not reachable, skipping: %v", err)
	}
}
