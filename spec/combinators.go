package spec

import (
	"errors"
	"slices"
)

// ErrNilSpecificationSupplied is the panic value of Not when it is handed a
// nil specification.
var ErrNilSpecificationSupplied = errors.New("nil specification supplied")

type conjunction[T any] struct {
	children []Specification[T]
}

type disjunction[T any] struct {
	children []Specification[T]
}

type negation[T any] struct {
	wrapped Specification[T]
}

// And combines specifications into one that is satisfied only when every child
// is satisfied. Children are evaluated in the given order and evaluation stops
// at the first unsatisfied one. Nil children are dropped at construction; with
// no children left the result is satisfied by everything.
func And[T any](specs ...Specification[T]) Specification[T] {
	return conjunction[T]{children: withoutNilSpecifications(specs)}
}

// Or combines specifications into one that is satisfied when at least one
// child is satisfied. Children are evaluated in the given order and evaluation
// stops at the first satisfied one. Nil children are dropped at construction;
// with no children left the result is satisfied by nothing.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return disjunction[T]{children: withoutNilSpecifications(specs)}
}

// Not inverts the wrapped specification. It panics with
// ErrNilSpecificationSupplied when handed nil, keeping combinator chains
// expression-shaped instead of forcing an error return into every
// composition site.
func Not[T any](s Specification[T]) Specification[T] {
	if s == nil {
		panic(ErrNilSpecificationSupplied)
	}

	return negation[T]{wrapped: s}
}

func (c conjunction[T]) SatisfiedBy(candidate T) bool {
	for _, child := range c.children {
		if !child.SatisfiedBy(candidate) {
			return false
		}
	}

	return true
}

func (d disjunction[T]) SatisfiedBy(candidate T) bool {
	for _, child := range d.children {
		if child.SatisfiedBy(candidate) {
			return true
		}
	}

	return false
}

func (n negation[T]) SatisfiedBy(candidate T) bool {
	return !n.wrapped.SatisfiedBy(candidate)
}

func withoutNilSpecifications[T any](specs []Specification[T]) []Specification[T] {
	cleaned := slices.DeleteFunc(slices.Clone(specs), func(s Specification[T]) bool {
		return s == nil
	})

	return slices.Clip(cleaned)
}
