package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for invalid publisher arguments.
var (
	ErrNilSubscriberSupplied  = errors.New("nil subscriber supplied")
	ErrNilDomainEventSupplied = errors.New("nil domain event supplied")
)

// Log messages used by the publisher.
const (
	logMsgSubscribedToEventType = "subscribed to event type"
	logMsgDispatchedEvent       = "dispatched event to subscriber"
	logMsgPublishedEvent        = "published event"
	logMsgSubscriberFailed      = "subscriber failed to handle event"
)

// Log attribute keys.
const (
	logAttrEventType      = "event_type"
	logAttrSubscribedType = "subscribed_type"
	logAttrDelivered      = "delivered"
	logAttrError          = "error"
)

// Metric names and labels for publisher instrumentation.
const (
	metricPublishDuration  = "publisher_publish_duration_seconds"
	metricEventsDelivered  = "publisher_events_delivered"
	metricSubscriberErrors = "publisher_subscriber_errors_total"
	labelEventType         = "event_type"
)

// EventPublisher dispatches domain events synchronously to an insertion-ordered
// registry of subscribers.
//
// The registry is append-only: subscribers cannot be removed, and duplicate
// subscriptions are permitted (each one receives matching events). Dispatch runs on
// the caller's goroutine and the first handler error aborts the remaining dispatch.
//
// EventPublisher is not safe for concurrent use. Callers that share a publisher
// across goroutines must serialize Subscribe and Publish externally.
type EventPublisher struct {
	subscribers      []EventSubscriber
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
}

// BuildEventPublisher creates a publisher with an empty registry,
// applying the supplied options.
func BuildEventPublisher(options ...PublisherOption) (*EventPublisher, error) {
	publisher := &EventPublisher{}

	for _, option := range options {
		if err := option(publisher); err != nil {
			return nil, err
		}
	}

	return publisher, nil
}

// Subscribe appends the subscriber to the registry.
// There is no way to remove a subscriber once added.
func (p *EventPublisher) Subscribe(subscriber EventSubscriber) error {
	if subscriber == nil {
		return ErrNilSubscriberSupplied
	}

	p.subscribers = append(p.subscribers, subscriber)

	p.logInfo(logMsgSubscribedToEventType, logAttrSubscribedType, subscriber.SubscribedToEventType())

	return nil
}

// Publish delivers the event to every subscriber whose declared interest matches
// the event's type, in subscription order. Matching follows MatchesEventType, so a
// subscriber to "account.money" receives "account.money.deposited" as well.
//
// The first handler error is returned immediately and the remaining subscribers
// are not invoked.
func (p *EventPublisher) Publish(ctx context.Context, event Event) error {
	if event == nil {
		return ErrNilDomainEventSupplied
	}

	start := time.Now()
	delivered := 0

	for _, subscriber := range p.subscribers {
		if !MatchesEventType(subscriber.SubscribedToEventType(), event.EventType()) {
			continue
		}

		if err := subscriber.HandleEvent(ctx, event); err != nil {
			p.recordSubscriberError(event.EventType())
			p.logError(ctx, logMsgSubscriberFailed, err,
				logAttrEventType, event.EventType(),
				logAttrSubscribedType, subscriber.SubscribedToEventType())

			return err
		}

		delivered++

		p.logDebug(ctx, logMsgDispatchedEvent,
			logAttrEventType, event.EventType(),
			logAttrSubscribedType, subscriber.SubscribedToEventType())
	}

	p.recordPublishMetrics(event.EventType(), delivered, time.Since(start))
	p.logDebug(ctx, logMsgPublishedEvent,
		logAttrEventType, event.EventType(),
		logAttrDelivered, delivered)

	return nil
}

func (p *EventPublisher) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *EventPublisher) logDebug(ctx context.Context, msg string, args ...any) {
	if p.contextualLogger != nil {
		p.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *EventPublisher) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if p.contextualLogger != nil {
		p.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if p.logger != nil {
		p.logger.Error(msg, allArgs...)
	}
}

func (p *EventPublisher) recordPublishMetrics(eventType EventTypeString, delivered int, duration time.Duration) {
	if p.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelEventType: eventType}
	p.metricsCollector.RecordDuration(metricPublishDuration, duration, labels)
	p.metricsCollector.RecordValue(metricEventsDelivered, float64(delivered), labels)
}

func (p *EventPublisher) recordSubscriberError(eventType EventTypeString) {
	if p.metricsCollector == nil {
		return
	}

	p.metricsCollector.IncrementCounter(metricSubscriberErrors, map[string]string{labelEventType: eventType})
}
