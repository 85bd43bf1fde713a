package core

import (
	"github.com/modelfirst/tactical-ddd-go/spec"
)

// MaxSingleWithdrawalMinorUnits caps how much a single withdrawal may move.
const MaxSingleWithdrawalMinorUnits = int64(500_000)

// AccountIsOpen is satisfied while the account is open and not yet closed.
func AccountIsOpen() spec.Specification[AccountState] {
	return spec.Predicate[AccountState](func(s AccountState) bool {
		return s.IsOpen()
	})
}

// DenominatedIn is satisfied when the account is held in the given currency.
func DenominatedIn(currency string) spec.Specification[AccountState] {
	return spec.Predicate[AccountState](func(s AccountState) bool {
		return s.Currency() == currency
	})
}

// HasSufficientFunds is satisfied when the balance covers the amount.
func HasSufficientFunds(amountMinorUnits int64) spec.Specification[AccountState] {
	return spec.Predicate[AccountState](func(s AccountState) bool {
		return s.BalanceMinorUnits() >= amountMinorUnits
	})
}

// WithinSingleWithdrawalLimit is satisfied when the amount does not exceed
// the per-withdrawal cap.
func WithinSingleWithdrawalLimit(amountMinorUnits int64) spec.Specification[AccountState] {
	return spec.Predicate[AccountState](func(_ AccountState) bool {
		return amountMinorUnits <= MaxSingleWithdrawalMinorUnits
	})
}

// WithdrawalAllowed combines the account's withdrawal policy: the account must
// be open and held in the withdrawal currency, the funds must cover the amount,
// and the amount must stay within the single-withdrawal limit.
func WithdrawalAllowed(amountMinorUnits int64, currency string) spec.Specification[AccountState] {
	return spec.And(
		AccountIsOpen(),
		DenominatedIn(currency),
		HasSufficientFunds(amountMinorUnits),
		WithinSingleWithdrawalLimit(amountMinorUnits),
	)
}
