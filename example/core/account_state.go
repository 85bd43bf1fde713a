package core

import (
	"github.com/modelfirst/tactical-ddd-go/domain"
)

// AccountState is the state of one account projected from its event history.
// It implements domain.VersionedEntity with the journal's stream version, so
// two loads of the same account can be compared with domain.SameVersion and
// the version can be passed straight to an optimistic append.
type AccountState struct {
	id                domain.EntityID
	opened            bool
	closed            bool
	holder            string
	balanceMinorUnits int64
	currency          string
	version           uint64
}

var _ domain.VersionedEntity[domain.EntityID] = AccountState{}

// ProjectAccountState replays the account's history and returns its current state.
// The version is the journal stream version the history was read at.
func ProjectAccountState(id domain.EntityID, history domain.Events, version uint64) AccountState {
	s := AccountState{
		id:      id,
		version: version,
	}

	accountID := id.String()

	for _, event := range history {
		switch e := event.(type) {
		case AccountOpened:
			if e.AccountID == accountID {
				s.opened = true
				s.holder = e.Holder
				s.currency = e.Currency
			}

		case MoneyDeposited:
			if e.AccountID == accountID {
				s.balanceMinorUnits += e.AmountMinorUnits
			}

		case MoneyWithdrawn:
			if e.AccountID == accountID {
				s.balanceMinorUnits -= e.AmountMinorUnits
			}

		case AccountClosed:
			if e.AccountID == accountID {
				s.closed = true
			}
		}
	}

	return s
}

// ID returns the account identity.
func (s AccountState) ID() domain.EntityID {
	return s.id
}

// Version returns the journal stream version the state was projected at.
func (s AccountState) Version() uint64 {
	return s.version
}

// WasOpened returns true once an AccountOpened event was journaled, even if
// the account was closed afterward.
func (s AccountState) WasOpened() bool {
	return s.opened
}

// IsOpen returns true while the account is open and not yet closed.
func (s AccountState) IsOpen() bool {
	return s.opened && !s.closed
}

// IsClosed returns true once the account was closed.
func (s AccountState) IsClosed() bool {
	return s.closed
}

// Holder returns the account holder's name.
func (s AccountState) Holder() string {
	return s.holder
}

// Currency returns the account's ISO 4217 currency code.
func (s AccountState) Currency() string {
	return s.currency
}

// BalanceMinorUnits returns the current balance in minor units.
func (s AccountState) BalanceMinorUnits() int64 {
	return s.balanceMinorUnits
}

// Balance returns the current balance as a Money value object.
func (s AccountState) Balance() (Money, error) {
	return BuildMoney(s.balanceMinorUnits, s.currency)
}
