package domain

import (
	"context"
)

// EventSubscriber is the capability a subscriber exposes to the publisher: the event type
// it wants (which may be a family tag or the universal marker) and a handler function.
// Subscribers are purely reactive and take no ownership over events.
type EventSubscriber interface {
	// SubscribedToEventType returns the event type tag this subscriber wants to receive,
	// matched against published events with MatchesEventType.
	SubscribedToEventType() EventTypeString

	// HandleEvent reacts to a single matching event on the publisher's goroutine.
	HandleEvent(ctx context.Context, event Event) error
}

// subscriberFunc adapts a plain function to the EventSubscriber interface.
type subscriberFunc struct {
	eventType EventTypeString
	handle    func(ctx context.Context, event Event) error
}

// SubscribeFunc wraps a handler function as an EventSubscriber for the given event type tag.
func SubscribeFunc(eventType EventTypeString, handle func(ctx context.Context, event Event) error) EventSubscriber {
	return subscriberFunc{eventType: eventType, handle: handle}
}

// SubscribedToEventType returns the event type tag this subscriber wants to receive.
func (s subscriberFunc) SubscribedToEventType() EventTypeString {
	return s.eventType
}

// HandleEvent invokes the wrapped handler function.
func (s subscriberFunc) HandleEvent(ctx context.Context, event Event) error {
	return s.handle(ctx, event)
}
