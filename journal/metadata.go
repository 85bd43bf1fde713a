package journal

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrMappingToMetadataFailed is returned when metadata conversion fails.
var ErrMappingToMetadataFailed = errors.New("mapping to metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events.
type CorrelationID = string

// Metadata contains event tracking information carried alongside each record.
type Metadata struct {
	MessageID     MessageID     `json:"messageId"`
	CausationID   CausationID   `json:"causationId"`
	CorrelationID CorrelationID `json:"correlationId"`
}

// BuildMetadata creates Metadata from UUID values, drawing a fresh MessageID.
func BuildMetadata(causationID uuid.UUID, correlationID uuid.UUID) Metadata {
	return Metadata{
		MessageID:     uuid.New().String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// MetadataFrom extracts Metadata from a Record.
func MetadataFrom(record Record) (Metadata, error) {
	metadata := new(Metadata)
	if err := jsoniter.ConfigFastest.Unmarshal(record.MetadataJSON, metadata); err != nil {
		return Metadata{}, errors.Join(ErrMappingToMetadataFailed, err)
	}

	return *metadata, nil
}

// MarshalMetadata serializes Metadata to JSON for storage in a record.
func MarshalMetadata(metadata Metadata) ([]byte, error) {
	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return nil, errors.Join(ErrMappingToMetadataFailed, err)
	}

	return metadataJSON, nil
}
