package core

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

// AccountOpenedEventType is the event type tag.
const AccountOpenedEventType = "account.opened"

// AccountOpened represents when a bank account was opened for a holder.
type AccountOpened struct {
	AccountID  AccountIDString
	Holder     string
	Currency   string
	OccurredAt domain.OccurredAtTS
}

// BuildAccountOpened creates a new AccountOpened event.
func BuildAccountOpened(
	accountID domain.EntityID,
	holder string,
	currency string,
	occurredAt time.Time,
) AccountOpened {

	event := AccountOpened{
		AccountID:  accountID.String(),
		Holder:     holder,
		Currency:   currency,
		OccurredAt: domain.ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type tag.
func (e AccountOpened) EventType() domain.EventTypeString {
	return AccountOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AccountOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}
