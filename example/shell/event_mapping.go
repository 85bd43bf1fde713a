package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/journal"
)

// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
var ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

// NewAccountEventRegistry builds a codec registry with a decoder for every
// account event type.
func NewAccountEventRegistry() (*journal.Registry, error) {
	registry := journal.BuildRegistry()

	if err := registry.Register(core.AccountOpenedEventType, decodeAccountOpened); err != nil {
		return nil, err
	}

	if err := registry.Register(core.MoneyDepositedEventType, decodeMoneyDeposited); err != nil {
		return nil, err
	}

	if err := registry.Register(core.MoneyWithdrawnEventType, decodeMoneyWithdrawn); err != nil {
		return nil, err
	}

	if err := registry.Register(core.AccountClosedEventType, decodeAccountClosed); err != nil {
		return nil, err
	}

	if err := registry.Register(core.WithdrawalRefusedEventType, decodeWithdrawalRefused); err != nil {
		return nil, err
	}

	return registry, nil
}

// RecordFor wraps a domain event into a journal record with fresh metadata,
// carrying the given causation and correlation identifiers.
func RecordFor(event domain.Event, causationID uuid.UUID, correlationID uuid.UUID) (journal.Record, error) {
	return journal.RecordFrom(event, journal.BuildMetadata(causationID, correlationID))
}

func decodeAccountOpened(record journal.Record) (domain.Event, error) {
	var event core.AccountOpened

	if err := jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

func decodeMoneyDeposited(record journal.Record) (domain.Event, error) {
	var event core.MoneyDeposited

	if err := jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

func decodeMoneyWithdrawn(record journal.Record) (domain.Event, error) {
	var event core.MoneyWithdrawn

	if err := jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

func decodeAccountClosed(record journal.Record) (domain.Event, error) {
	var event core.AccountClosed

	if err := jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}

func decodeWithdrawalRefused(record journal.Record) (domain.Event, error) {
	var event core.WithdrawalRefused

	if err := jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
