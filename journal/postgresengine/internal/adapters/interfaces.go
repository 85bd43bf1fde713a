package adapters

import "context"

// DBAdapter is the slice of database behavior the journal engine needs: it
// only ever runs finished SQL strings (goqu interpolates all values), so one
// Query and one Exec method cover both journal operations.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBRows is the row cursor a journal query iterates while scanning records.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult reports the rows affected by an append, which is how the engine
// detects a lost optimistic-concurrency race.
type DBResult interface {
	RowsAffected() (int64, error)
}
