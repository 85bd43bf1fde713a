package core

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

// MoneyDepositedEventType is the event type tag.
const MoneyDepositedEventType = "account.money.deposited"

// MoneyDeposited represents when money was deposited into an account.
type MoneyDeposited struct {
	AccountID        AccountIDString
	AmountMinorUnits int64
	Currency         string
	OccurredAt       domain.OccurredAtTS
}

// BuildMoneyDeposited creates a new MoneyDeposited event.
func BuildMoneyDeposited(
	accountID domain.EntityID,
	amount Money,
	occurredAt time.Time,
) MoneyDeposited {

	event := MoneyDeposited{
		AccountID:        accountID.String(),
		AmountMinorUnits: amount.AmountMinorUnits(),
		Currency:         amount.Currency(),
		OccurredAt:       domain.ToOccurredAt(occurredAt),
	}

	return event
}

// Amount returns the deposited amount as a Money value object.
func (e MoneyDeposited) Amount() (Money, error) {
	return BuildMoney(e.AmountMinorUnits, e.Currency)
}

// EventType returns the event type tag.
func (e MoneyDeposited) EventType() domain.EventTypeString {
	return MoneyDepositedEventType
}

// HasOccurredAt returns when this event occurred.
func (e MoneyDeposited) HasOccurredAt() time.Time {
	return e.OccurredAt
}
