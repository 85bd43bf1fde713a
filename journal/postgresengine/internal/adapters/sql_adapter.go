package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter runs journal SQL through a database/sql DB, covering any
// driver-based setup (the tests use lib/pq).
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter wraps a sql.DB as a journal database adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Query runs a journal select and wraps the resulting rows.
func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec runs a journal append statement and wraps the result.
func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}
