package depositmoney

import (
	"context"

	"github.com/google/uuid"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/example/shell"
	"github.com/modelfirst/tactical-ddd-go/journal"
)

// Journal defines the interface needed by the CommandHandler for journal operations.
type Journal interface {
	Events(ctx context.Context, selection journal.Selection) (
		journal.Records,
		journal.Version,
		error,
	)
	Append(
		ctx context.Context,
		entityID domain.EntityID,
		expectedVersion journal.Version,
		record journal.Record,
		additionalRecords ...journal.Record,
	) error
}

// EventPublisher defines the interface needed by the CommandHandler
// to notify subscribers about appended events.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// CommandHandler orchestrates the complete command processing workflow.
// It handles only business logic: Events → Decode → Decide → Append → Publish.
type CommandHandler struct {
	accountJournal Journal
	registry       *journal.Registry
	publisher      EventPublisher
	retryOptions   []shell.RetryOption
}

// NewCommandHandler creates a new CommandHandler with the provided dependencies.
// The retry options configure the backoff behavior for concurrency conflicts.
func NewCommandHandler(
	accountJournal Journal,
	registry *journal.Registry,
	publisher EventPublisher,
	retryOptions ...shell.RetryOption,
) CommandHandler {

	return CommandHandler{
		accountJournal: accountJournal,
		registry:       registry,
		publisher:      publisher,
		retryOptions:   retryOptions,
	}
}

// Handle executes the complete command processing workflow.
// It retries on concurrency conflicts with exponential backoff.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	return shell.RetryWithExponentialBackoff(
		ctx,
		func(retryCtx context.Context) error {
			return h.executeCommand(retryCtx, command)
		},
		h.retryOptions...,
	)
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	selection := journal.BuildSelection().ForEntity(command.AccountID).Finalize()

	// Query phase
	records, streamVersion, err := h.accountJournal.Events(ctx, selection)
	if err != nil {
		return err
	}

	// Decode phase
	history, err := h.registry.DecodeAll(records)
	if err != nil {
		return err
	}

	// Business logic phase - delegate to pure core functions
	state := core.ProjectAccountState(command.AccountID, history, streamVersion)
	result := Decide(state, command)

	if !result.HasEventToAppend() {
		return result.HasError() // nothing to append - a rejected command
	}

	// Append phase - single event to append
	uid := uuid.New()

	record, err := shell.RecordFor(result.Event, uid, uid)
	if err != nil {
		return err
	}

	if appendErr := h.accountJournal.Append(ctx, command.AccountID, streamVersion, record); appendErr != nil {
		return appendErr
	}

	// Publish phase - notify subscribers once the journal accepted the event
	if publishErr := h.publisher.Publish(ctx, result.Event); publishErr != nil {
		return publishErr
	}

	return result.HasError()
}
