package core

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

// MoneyWithdrawnEventType is the event type tag.
const MoneyWithdrawnEventType = "account.money.withdrawn"

// MoneyWithdrawn represents when money was withdrawn from an account.
type MoneyWithdrawn struct {
	AccountID        AccountIDString
	AmountMinorUnits int64
	Currency         string
	OccurredAt       domain.OccurredAtTS
}

// BuildMoneyWithdrawn creates a new MoneyWithdrawn event.
func BuildMoneyWithdrawn(
	accountID domain.EntityID,
	amount Money,
	occurredAt time.Time,
) MoneyWithdrawn {

	event := MoneyWithdrawn{
		AccountID:        accountID.String(),
		AmountMinorUnits: amount.AmountMinorUnits(),
		Currency:         amount.Currency(),
		OccurredAt:       domain.ToOccurredAt(occurredAt),
	}

	return event
}

// Amount returns the withdrawn amount as a Money value object.
func (e MoneyWithdrawn) Amount() (Money, error) {
	return BuildMoney(e.AmountMinorUnits, e.Currency)
}

// EventType returns the event type tag.
func (e MoneyWithdrawn) EventType() domain.EventTypeString {
	return MoneyWithdrawnEventType
}

// HasOccurredAt returns when this event occurred.
func (e MoneyWithdrawn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
