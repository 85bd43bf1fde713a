package closeaccount

import (
	"errors"

	"github.com/modelfirst/tactical-ddd-go/example/core"
)

const (
	failureReasonNeverOpened    = "account was never opened"
	failureReasonNonZeroBalance = "account balance must be zero"
)

// Decide implements the business logic to determine whether a bank account should be closed.
// This is a pure function with no side effects - it takes the current account state and a command
// and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: An account with AccountID
//	WHEN: CloseAccount command is received
//	THEN: AccountClosed event is generated
//	ERROR: "account was never opened" if no account exists for the AccountID
//	ERROR: "account balance must be zero" if funds remain on the account
//	IDEMPOTENCY: If the account is already closed, no event is generated (no-op)
func Decide(state core.AccountState, command Command) core.DecisionResult {
	if !state.WasOpened() {
		return core.ErrorDecision(nil, errors.New(commandType+": "+failureReasonNeverOpened))
	}

	if state.IsClosed() {
		return core.IdempotentDecision() // idempotency - the account is already closed, so no new event
	}

	if state.BalanceMinorUnits() != 0 {
		return core.ErrorDecision(nil, errors.New(commandType+": "+failureReasonNonZeroBalance))
	}

	return core.SuccessDecision(
		core.BuildAccountClosed(
			command.AccountID,
			command.OccurredAt,
		),
	)
}
