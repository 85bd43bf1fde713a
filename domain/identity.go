package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for invalid identity arguments.
var (
	ErrNilUUIDSupplied         = errors.New("nil uuid supplied")
	ErrInvalidEntityIDSupplied = errors.New("invalid entity id supplied")
)

// Identity is the contract for typed identifier values.
type Identity[T any] interface {
	Value() T
}

// EntityID is a UUID-backed identity value. The zero value is invalid,
// use NewEntityID, BuildEntityID, or ParseEntityID to obtain one.
// EntityID is comparable and usable as a map key.
type EntityID struct {
	value uuid.UUID
}

var _ Identity[uuid.UUID] = EntityID{}

// NewEntityID draws a random identity.
func NewEntityID() EntityID {
	return EntityID{value: uuid.New()}
}

// BuildEntityID creates an identity from an existing UUID.
func BuildEntityID(value uuid.UUID) (EntityID, error) {
	if value == uuid.Nil {
		return EntityID{}, ErrNilUUIDSupplied
	}

	return EntityID{value: value}, nil
}

// ParseEntityID creates an identity from its canonical string form.
func ParseEntityID(value string) (EntityID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return EntityID{}, errors.Join(ErrInvalidEntityIDSupplied, err)
	}

	return BuildEntityID(parsed)
}

// Value returns the underlying UUID.
func (id EntityID) Value() uuid.UUID {
	return id.value
}

// String returns the canonical UUID string form.
func (id EntityID) String() string {
	return id.value.String()
}

// IsZero reports whether the identity is the invalid zero value.
func (id EntityID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so EntityID round-trips
// through JSON as its canonical string form.
func (id EntityID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *EntityID) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityID(string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}
