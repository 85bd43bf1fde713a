package domain

import (
	"strings"
	"time"
)

// EventTypeString is a type alias for string, representing a dot-separated event type tag.
type EventTypeString = string

// OccurredAtTS is a type alias for time.Time, representing when an event occurred.
type OccurredAtTS = time.Time

const (
	// EventTypeAny is the universal marker: a subscriber declaring it receives every published event.
	EventTypeAny EventTypeString = "*"

	// EventTypeSeparator separates the segments of an event type tag, e.g. "account.money.deposited".
	EventTypeSeparator = "."
)

// Events is a slice of Event instances.
type Events = []Event

// Event represents a business event that has occurred in the domain.
type Event interface {
	// EventType returns the dot-separated type tag for this event.
	EventType() EventTypeString

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}

// MatchesEventType reports whether a subscriber's declared interest matches an event's type tag.
//
// An interest matches when it is the universal marker, equals the event type exactly,
// or is a dotted ancestor of it: "account" matches "account.opened" and
// "account.money.deposited", but not "accounting.closed". An empty interest matches nothing.
func MatchesEventType(interest, eventType EventTypeString) bool {
	if interest == "" {
		return false
	}

	if interest == EventTypeAny {
		return true
	}

	if interest == eventType {
		return true
	}

	return strings.HasPrefix(eventType, interest+EventTypeSeparator)
}

// ToOccurredAt converts a time to the canonical event timestamp with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
