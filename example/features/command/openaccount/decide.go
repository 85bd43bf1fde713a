package openaccount

import (
	"errors"

	"github.com/modelfirst/tactical-ddd-go/example/core"
)

const failureReasonAccountClosed = "account is closed"

// Decide implements the business logic to determine whether a bank account should be opened.
// This is a pure function with no side effects - it takes the current account state and a command
// and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: An account with AccountID
//	WHEN: OpenAccount command is received
//	THEN: AccountOpened event is generated
//	ERROR: "account is closed" if the account was closed before - closed accounts stay closed
//	IDEMPOTENCY: If the account is already open, no event is generated (no-op)
func Decide(state core.AccountState, command Command) core.DecisionResult {
	if state.IsOpen() {
		return core.IdempotentDecision() // idempotency - the account is already open, so no new event
	}

	if state.IsClosed() {
		return core.ErrorDecision(nil, errors.New(commandType+": "+failureReasonAccountClosed))
	}

	return core.SuccessDecision(
		core.BuildAccountOpened(
			command.AccountID,
			command.Holder,
			command.Currency,
			command.OccurredAt,
		),
	)
}
