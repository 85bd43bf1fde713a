package core

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

// AccountClosedEventType is the event type tag.
const AccountClosedEventType = "account.closed"

// AccountClosed represents when a bank account was closed.
type AccountClosed struct {
	AccountID  AccountIDString
	OccurredAt domain.OccurredAtTS
}

// BuildAccountClosed creates a new AccountClosed event.
func BuildAccountClosed(accountID domain.EntityID, occurredAt time.Time) AccountClosed {
	event := AccountClosed{
		AccountID:  accountID.String(),
		OccurredAt: domain.ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type tag.
func (e AccountClosed) EventType() domain.EventTypeString {
	return AccountClosedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AccountClosed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
