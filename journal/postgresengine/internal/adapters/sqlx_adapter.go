package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter runs journal SQL through a sqlx.DB. Since the engine passes
// finished SQL strings, only the context-aware query/exec methods are needed;
// sqlx's named-parameter and struct-scanning extras stay unused.
type SQLXAdapter struct {
	db *sqlx.DB
}

// NewSQLXAdapter wraps a sqlx.DB as a journal database adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

// Query runs a journal select and wraps the resulting rows.
func (s *SQLXAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec runs a journal append statement and wraps the result.
func (s *SQLXAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}
