package depositmoney

import (
	"errors"

	"github.com/modelfirst/tactical-ddd-go/example/core"
)

const (
	failureReasonAccountNotOpen   = "account is not open"
	failureReasonCurrencyMismatch = "deposit currency does not match the account currency"
)

// Decide implements the business logic to determine whether money should be deposited.
// This is a pure function with no side effects - it takes the current account state and a command
// and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: An account with AccountID
//	WHEN: DepositMoney command is received
//	THEN: MoneyDeposited event is generated
//	ERROR: "account is not open" if the account was never opened or is closed
//	ERROR: "deposit currency does not match the account currency" for foreign currency deposits
//
// Deposits are never idempotent - every accepted command credits the account again.
func Decide(state core.AccountState, command Command) core.DecisionResult {
	if !state.IsOpen() {
		return core.ErrorDecision(nil, errors.New(commandType+": "+failureReasonAccountNotOpen))
	}

	if state.Currency() != command.Currency {
		return core.ErrorDecision(nil, errors.New(commandType+": "+failureReasonCurrencyMismatch))
	}

	amount, err := core.BuildMoney(command.AmountMinorUnits, command.Currency)
	if err != nil {
		return core.ErrorDecision(nil, err)
	}

	return core.SuccessDecision(
		core.BuildMoneyDeposited(
			command.AccountID,
			amount,
			command.OccurredAt,
		),
	)
}
