package spec

// Specification is a composable boolean predicate over candidate values.
//
// SatisfiedBy must be a pure function of the candidate: no side effects, no
// mutation of the candidate, no memoization. Composite specifications hold
// their children exclusively and re-evaluate them on every invocation.
type Specification[T any] interface {
	SatisfiedBy(candidate T) bool
}

// Predicate adapts an ordinary function to the Specification interface,
// analogous to http.HandlerFunc.
type Predicate[T any] func(candidate T) bool

// SatisfiedBy calls the underlying function with the candidate.
func (p Predicate[T]) SatisfiedBy(candidate T) bool {
	return p(candidate)
}
