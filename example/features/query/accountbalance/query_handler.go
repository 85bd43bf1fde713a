package accountbalance

import (
	"context"

	"github.com/modelfirst/tactical-ddd-go/journal"
)

// Journal defines the interface needed by the QueryHandler for journal operations.
type Journal interface {
	Events(ctx context.Context, selection journal.Selection) (
		journal.Records,
		journal.Version,
		error,
	)
}

// QueryHandler orchestrates the complete query processing workflow.
// It handles infrastructure concerns like journal interactions and delegates
// projection logic to the pure core function.
type QueryHandler struct {
	accountJournal Journal
	registry       *journal.Registry
}

// NewQueryHandler creates a new QueryHandler with the provided dependencies.
func NewQueryHandler(accountJournal Journal, registry *journal.Registry) QueryHandler {
	return QueryHandler{
		accountJournal: accountJournal,
		registry:       registry,
	}
}

// Handle executes the complete query processing workflow: Events → Decode → Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Balance, error) {
	selection := BuildEventSelection(query.AccountID)

	// Query phase
	records, _, err := h.accountJournal.Events(ctx, selection)
	if err != nil {
		return Balance{}, err
	}

	// Decode phase
	history, err := h.registry.DecodeAll(records)
	if err != nil {
		return Balance{}, err
	}

	// Projection phase - delegate to a pure core function
	return ProjectBalance(history, query), nil
}
