package journal

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/modelfirst/tactical-ddd-go/domain"
)

var ErrNilDecodeFuncSupplied = errors.New("nil decode func supplied")
var ErrDecoderAlreadyRegistered = errors.New("decoder already registered for event type")
var ErrNoDecoderRegistered = errors.New("no decoder registered for event type")
var ErrMappingToRecordFailed = errors.New("mapping to record failed")

// DecodeFunc turns a stored record back into the domain event it was built from.
type DecodeFunc func(record Record) (domain.Event, error)

// Registry maps event types to decode functions. Together with RecordFrom it
// forms the codec between domain events and records: the application registers
// one decoder per event type it journals and the journal itself stays agnostic
// of concrete event implementations.
//
// Registry is not safe for concurrent mutation; register all decoders during
// startup before sharing it.
type Registry struct {
	decoders map[domain.EventTypeString]DecodeFunc
}

// BuildRegistry creates an empty Registry.
func BuildRegistry() *Registry {
	return &Registry{decoders: make(map[domain.EventTypeString]DecodeFunc)}
}

// Register binds a decode function to an event type.
// Each event type takes exactly one decoder; registering a second one fails.
func (r *Registry) Register(eventType domain.EventTypeString, decode DecodeFunc) error {
	if eventType == "" {
		return ErrEmptyEventTypeSupplied
	}

	if decode == nil {
		return ErrNilDecodeFuncSupplied
	}

	if _, exists := r.decoders[eventType]; exists {
		return fmt.Errorf("%w: %s", ErrDecoderAlreadyRegistered, eventType)
	}

	r.decoders[eventType] = decode

	return nil
}

// Decode turns a record back into its domain event.
func (r *Registry) Decode(record Record) (domain.Event, error) {
	decode, exists := r.decoders[record.EventType]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoDecoderRegistered, record.EventType)
	}

	return decode(record)
}

// DecodeAll turns records back into domain events, preserving record order.
func (r *Registry) DecodeAll(records Records) (domain.Events, error) {
	events := make(domain.Events, 0, len(records))

	for _, record := range records {
		event, err := r.Decode(record)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

// RecordFrom builds the record for a domain event: the event itself marshals
// to the payload JSON with the metadata carried alongside.
func RecordFrom(event domain.Event, metadata Metadata) (Record, error) {
	if event == nil {
		return Record{}, domain.ErrNilDomainEventSupplied
	}

	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return Record{}, errors.Join(ErrMappingToRecordFailed, err)
	}

	metadataJSON, err := MarshalMetadata(metadata)
	if err != nil {
		return Record{}, errors.Join(ErrMappingToRecordFailed, err)
	}

	return BuildRecord(event.EventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
}
