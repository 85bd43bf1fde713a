package core

import (
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

// WithdrawalRefusedEventType is the event type tag.
const WithdrawalRefusedEventType = "account.withdrawal.refused"

// WithdrawalRefused represents when a withdrawal was refused by the
// withdrawal policy. It is journaled like any other event so that refusals
// stay visible in the account history.
type WithdrawalRefused struct {
	AccountID        AccountIDString
	AmountMinorUnits int64
	Currency         string
	Reason           string
	OccurredAt       domain.OccurredAtTS
}

// BuildWithdrawalRefused creates a new WithdrawalRefused event.
func BuildWithdrawalRefused(
	accountID domain.EntityID,
	amount Money,
	reason string,
	occurredAt time.Time,
) WithdrawalRefused {

	event := WithdrawalRefused{
		AccountID:        accountID.String(),
		AmountMinorUnits: amount.AmountMinorUnits(),
		Currency:         amount.Currency(),
		Reason:           reason,
		OccurredAt:       domain.ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type tag.
func (e WithdrawalRefused) EventType() domain.EventTypeString {
	return WithdrawalRefusedEventType
}

// HasOccurredAt returns when this event occurred.
func (e WithdrawalRefused) HasOccurredAt() time.Time {
	return e.OccurredAt
}
