package domain

import "reflect"

// Entity is the contract for objects distinguished by identity rather than by
// their attribute values.
type Entity[K comparable] interface {
	ID() K
}

// Versioned is the contract for entities carrying an optimistic concurrency
// version. The version starts at 0 for a new entity and increases by one per
// journaled change.
type Versioned interface {
	Version() uint64
}

// VersionedEntity combines identity with an optimistic concurrency version.
type VersionedEntity[K comparable] interface {
	Entity[K]
	Versioned
}

// SameIdentity reports whether a and b are the same entity: the same dynamic
// type with equal identifiers. Nil arguments are never the same entity.
func SameIdentity[K comparable](a, b Entity[K]) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return a.ID() == b.ID()
}

// SameVersion reports whether a and b are the same entity at the same version.
func SameVersion[K comparable](a, b VersionedEntity[K]) bool {
	if !SameIdentity[K](a, b) {
		return false
	}

	return a.Version() == b.Version()
}
