package accountbalance

import (
	"context"
	"sync"

	"github.com/modelfirst/tactical-ddd-go/domain"
	"github.com/modelfirst/tactical-ddd-go/example/core"
)

// moneyEventFamily matches both account.money.deposited and account.money.withdrawn.
const moneyEventFamily = "account.money"

// BalanceReadModel keeps per-account balances current by subscribing to the
// account.money event family on a publisher. It is safe for concurrent use.
//
// The read model only sees events published after it subscribed. Pre-existing
// accounts can be primed with Seed before wiring it to a publisher.
type BalanceReadModel struct {
	mu       sync.RWMutex
	balances map[core.AccountIDString]int64
}

var _ domain.EventSubscriber = (*BalanceReadModel)(nil)

// NewBalanceReadModel creates an empty BalanceReadModel.
func NewBalanceReadModel() *BalanceReadModel {
	return &BalanceReadModel{
		balances: make(map[core.AccountIDString]int64),
	}
}

// SubscribedToEventType returns the account.money family tag, so the publisher
// delivers every money movement regardless of its concrete type.
func (rm *BalanceReadModel) SubscribedToEventType() domain.EventTypeString {
	return moneyEventFamily
}

// HandleEvent applies a single money movement to the tracked balances.
func (rm *BalanceReadModel) HandleEvent(_ context.Context, event domain.Event) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	switch e := event.(type) {
	case core.MoneyDeposited:
		rm.balances[e.AccountID] += e.AmountMinorUnits
	case core.MoneyWithdrawn:
		rm.balances[e.AccountID] -= e.AmountMinorUnits
	}

	return nil
}

// Seed primes the read model with an account's already projected balance.
func (rm *BalanceReadModel) Seed(accountID domain.EntityID, balanceMinorUnits int64) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.balances[accountID.String()] = balanceMinorUnits
}

// BalanceMinorUnits returns the tracked balance for the account and whether
// the read model has seen any movement for it.
func (rm *BalanceReadModel) BalanceMinorUnits(accountID domain.EntityID) (int64, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	balance, found := rm.balances[accountID.String()]

	return balance, found
}
