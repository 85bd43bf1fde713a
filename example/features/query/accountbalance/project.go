package accountbalance

import (
	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
	"github.com/modelfirst/tactical-ddd-go/journal"
)

// ProjectBalance implements the query logic to determine the current balance of an account.
// This is a pure function with no side effects - it takes the account's domain events and a query
// and returns the projected balance.
//
// Query Logic:
//
//	GIVEN: An account with AccountID
//	WHEN: AccountBalance query is executed
//	THEN: Balance struct is returned with the current balance and movement count
//	INCLUDES: every deposit and withdrawal
//	EXCLUDES: refused withdrawals - they never moved money
func ProjectBalance(history domain.Events, query Query) Balance {
	queriedAccountID := query.AccountID.String()

	result := Balance{
		AccountID: queriedAccountID,
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.AccountOpened:
			if e.AccountID == queriedAccountID {
				result.Holder = e.Holder
				result.Currency = e.Currency
				result.IsOpen = true
			}

		case core.MoneyDeposited:
			if e.AccountID == queriedAccountID {
				result.BalanceMinorUnits += e.AmountMinorUnits
				result.MovementCount++
			}

		case core.MoneyWithdrawn:
			if e.AccountID == queriedAccountID {
				result.BalanceMinorUnits -= e.AmountMinorUnits
				result.MovementCount++
			}

		case core.AccountClosed:
			if e.AccountID == queriedAccountID {
				result.IsOpen = false
			}
		}
	}

	return result
}

// BuildEventSelection creates the selection for loading the account's
// balance-relevant records. Refused withdrawals are left out.
func BuildEventSelection(accountID domain.EntityID) journal.Selection {
	return journal.BuildSelection().
		ForEntity(accountID).
		WithEventTypes(
			core.AccountOpenedEventType,
			core.MoneyDepositedEventType,
			core.MoneyWithdrawnEventType,
			core.AccountClosedEventType,
		).
		Finalize()
}
