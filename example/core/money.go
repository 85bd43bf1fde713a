package core

import (
	"errors"
	"fmt"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

var ErrEmptyCurrencySupplied = errors.New("empty currency supplied")
var ErrNegativeAmountSupplied = errors.New("negative amount supplied")
var ErrCurrencyMismatch = errors.New("currency mismatch")
var ErrInsufficientFunds = errors.New("insufficient funds")

// Money is a value object holding a non-negative amount in minor units
// (cents) together with its ISO 4217 currency code.
//
// While two Money instances are comparable with ==, equality by value is
// what domain.EqualValueObjects provides, based on the equality components.
type Money struct {
	amountMinorUnits int64
	currency         string
}

var _ domain.ValueObject = Money{}

// BuildMoney is a factory method for Money.
// Returns an error if the amount is negative or the currency is empty.
func BuildMoney(amountMinorUnits int64, currency string) (Money, error) {
	if amountMinorUnits < 0 {
		return Money{}, ErrNegativeAmountSupplied
	}

	if currency == "" {
		return Money{}, ErrEmptyCurrencySupplied
	}

	return Money{
		amountMinorUnits: amountMinorUnits,
		currency:         currency,
	}, nil
}

// AmountMinorUnits returns the amount in minor units (cents).
func (m Money) AmountMinorUnits() int64 {
	return m.amountMinorUnits
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of both amounts.
// Returns ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return Money{
		amountMinorUnits: m.amountMinorUnits + other.amountMinorUnits,
		currency:         m.currency,
	}, nil
}

// Subtract returns the difference of both amounts.
// Returns ErrCurrencyMismatch if the currencies differ and ErrInsufficientFunds
// if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	if other.amountMinorUnits > m.amountMinorUnits {
		return Money{}, ErrInsufficientFunds
	}

	return Money{
		amountMinorUnits: m.amountMinorUnits - other.amountMinorUnits,
		currency:         m.currency,
	}, nil
}

// EqualityComponents returns the values this value object is compared by.
func (m Money) EqualityComponents() []any {
	return []any{m.amountMinorUnits, m.currency}
}
