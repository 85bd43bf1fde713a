package domain

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// ValueObject is the contract for objects defined entirely by their attribute
// values. EqualityComponents returns the ordered attributes participating in
// equality. Implementations return the components in a fixed order and include
// every attribute that distinguishes one instance from another.
type ValueObject interface {
	EqualityComponents() []any
}

// EqualValueObjects reports whether a and b are equal value objects: the same
// dynamic type with deeply equal equality component sequences. Nil arguments
// are never equal to anything, including each other.
func EqualValueObjects(a, b ValueObject) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return reflect.DeepEqual(a.EqualityComponents(), b.EqualityComponents())
}

// ValueObjectHash returns an FNV-1a hash over the value object's dynamic type
// and equality components, consistent with EqualValueObjects: equal value
// objects produce equal hashes. A nil value object hashes to 0.
func ValueObjectHash(v ValueObject) uint64 {
	if v == nil {
		return 0
	}

	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%T", v)

	for _, component := range v.EqualityComponents() {
		_, _ = fmt.Fprintf(hasher, "|%v", component)
	}

	return hasher.Sum64()
}
