package journal

import (
	"slices"
	"time"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

/***** Selection *****/

// Selection describes which slice of the journal to read: a single entity
// stream or all streams, optionally narrowed to event types and an occurred-at
// time window. It is immutable once finalized.
type Selection struct {
	entityID      domain.EntityID
	singleEntity  bool
	eventTypes    []domain.EventTypeString
	occurredFrom  time.Time
	occurredUntil time.Time
}

// EntityID returns the selected entity stream and true, or the zero identity
// and false for selections spanning all entities.
func (s Selection) EntityID() (domain.EntityID, bool) {
	return s.entityID, s.singleEntity
}

// EventTypes returns the event types the selection is narrowed to.
// An empty result means every event type is selected.
func (s Selection) EventTypes() []domain.EventTypeString {
	return s.eventTypes
}

// OccurredFrom returns the inclusive lower bound of the time window and
// whether one was set.
func (s Selection) OccurredFrom() (time.Time, bool) {
	return s.occurredFrom, !s.occurredFrom.IsZero()
}

// OccurredUntil returns the inclusive upper bound of the time window and
// whether one was set.
func (s Selection) OccurredUntil() (time.Time, bool) {
	return s.occurredUntil, !s.occurredUntil.IsZero()
}

/***** SelectionBuilder *****/

// SelectionBuilder builds a generic journal selection to be used in DB
// type-specific journal implementations to build queries for the specific
// query language, e.g.: Postgres, Mysql, MongoDB, ...
// It is designed with the idea to only allow "useful" selections for
// event-journaling workflows:
//
//   - (entity)
//   - (all entities)
//   - (entity AND (eventType OR eventType...))
//   - (entity AND time window)
//   - (all entities AND (eventType OR eventType...) AND time window)
type SelectionBuilder interface {
	// ForEntity scopes the selection to a single entity stream.
	ForEntity(entityID domain.EntityID) ScopedSelectionBuilder

	// AcrossAllEntities scopes the selection to every stream in the journal.
	AcrossAllEntities() ScopedSelectionBuilder
}

type ScopedSelectionBuilder interface {
	// WithEventTypes narrows the selection to records of the given event types.
	//
	// It sanitizes the input:
	//	- removing empty event types ("")
	//	- sorting the event types
	//	- removing duplicate event types
	WithEventTypes(eventType domain.EventTypeString, eventTypes ...domain.EventTypeString) ScopedSelectionBuilder

	// OccurredFrom narrows the selection to records that occurred at or after from.
	OccurredFrom(from time.Time) ScopedSelectionBuilder

	// OccurredUntil narrows the selection to records that occurred at or before until.
	OccurredUntil(until time.Time) ScopedSelectionBuilder

	// Finalize returns the Selection.
	Finalize() Selection
}

// selectionBuilder implements all the interfaces of SelectionBuilder.
type selectionBuilder struct {
	selection Selection
}

// BuildSelection creates a SelectionBuilder which must eventually be finalized with Finalize().
func BuildSelection() SelectionBuilder {
	return selectionBuilder{}
}

// ForEntity scopes the selection to a single entity stream.
func (sb selectionBuilder) ForEntity(entityID domain.EntityID) ScopedSelectionBuilder {
	sb.selection.entityID = entityID
	sb.selection.singleEntity = true

	return sb
}

// AcrossAllEntities scopes the selection to every stream in the journal.
func (sb selectionBuilder) AcrossAllEntities() ScopedSelectionBuilder {
	sb.selection.singleEntity = false

	return sb
}

// WithEventTypes narrows the selection to records of the given event types.
//
// It sanitizes the input:
//   - removing empty event types ("")
//   - sorting the event types
//   - removing duplicate event types
func (sb selectionBuilder) WithEventTypes(
	eventType domain.EventTypeString,
	eventTypes ...domain.EventTypeString,
) ScopedSelectionBuilder {

	sb.selection.eventTypes = append(
		sb.selection.eventTypes,
		sb.sanitizeEventTypes(eventType, eventTypes...)...,
	)

	return sb
}

func (sb selectionBuilder) sanitizeEventTypes(
	eventType domain.EventTypeString,
	eventTypes ...domain.EventTypeString,
) []domain.EventTypeString {

	allEventTypes := append([]domain.EventTypeString{eventType}, eventTypes...)
	allEventTypes = slices.DeleteFunc(
		allEventTypes,
		func(e domain.EventTypeString) bool {
			return e == ""
		})
	slices.Sort(allEventTypes)
	allEventTypes = slices.Compact(allEventTypes)
	allEventTypes = slices.Clip(allEventTypes)

	return allEventTypes
}

// OccurredFrom narrows the selection to records that occurred at or after from.
func (sb selectionBuilder) OccurredFrom(from time.Time) ScopedSelectionBuilder {
	sb.selection.occurredFrom = from

	return sb
}

// OccurredUntil narrows the selection to records that occurred at or before until.
func (sb selectionBuilder) OccurredUntil(until time.Time) ScopedSelectionBuilder {
	sb.selection.occurredUntil = until

	return sb
}

// Finalize returns the Selection.
func (sb selectionBuilder) Finalize() Selection {
	return sb.selection
}
