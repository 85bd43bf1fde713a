package withdrawmoney

import (
	"errors"

	"github.com/modelfirst/tactical-ddd-go/example/core"
)

const (
	failureReasonAccountNotOpen    = "account is not open"
	failureReasonCurrencyMismatch  = "withdrawal currency does not match the account currency"
	failureReasonAboveLimit        = "amount exceeds the single withdrawal limit"
	failureReasonInsufficientFunds = "insufficient funds"
)

// Decide implements the business logic to determine whether money should be withdrawn.
// This is a pure function with no side effects - it takes the current account state and a command
// and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: An account with AccountID
//	WHEN: WithdrawMoney command is received
//	THEN: MoneyWithdrawn event is generated when the withdrawal policy is satisfied
//	ERROR: WithdrawalRefused with "account is not open" if the account was never opened or is closed
//	ERROR: WithdrawalRefused with "withdrawal currency does not match the account currency"
//	ERROR: WithdrawalRefused with "amount exceeds the single withdrawal limit" above the cap
//	ERROR: WithdrawalRefused with "insufficient funds" if the balance does not cover the amount
//
// Refused withdrawals are journaled as WithdrawalRefused events, so rejections
// stay visible in the account history.
func Decide(state core.AccountState, command Command) core.DecisionResult {
	amount, err := core.BuildMoney(command.AmountMinorUnits, command.Currency)
	if err != nil {
		return core.ErrorDecision(nil, err)
	}

	policy := core.WithdrawalAllowed(command.AmountMinorUnits, command.Currency)
	if policy.SatisfiedBy(state) {
		return core.SuccessDecision(
			core.BuildMoneyWithdrawn(
				command.AccountID,
				amount,
				command.OccurredAt,
			),
		)
	}

	reason := refusalReason(state, command)
	event := core.BuildWithdrawalRefused(command.AccountID, amount, reason, command.OccurredAt)

	return core.ErrorDecision(event, errors.New(event.EventType()+": "+reason))
}

// refusalReason names the first rule of the withdrawal policy the state violates.
func refusalReason(state core.AccountState, command Command) string {
	switch {
	case !core.AccountIsOpen().SatisfiedBy(state):
		return failureReasonAccountNotOpen
	case !core.DenominatedIn(command.Currency).SatisfiedBy(state):
		return failureReasonCurrencyMismatch
	case !core.WithinSingleWithdrawalLimit(command.AmountMinorUnits).SatisfiedBy(state):
		return failureReasonAboveLimit
	default:
		return failureReasonInsufficientFunds
	}
}
