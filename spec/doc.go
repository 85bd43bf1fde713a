// Package spec implements composable boolean specifications.
//
// A Specification wraps a business rule as a predicate over a candidate value.
// Rules compose with And, Or, and Not into expression trees that re-evaluate
// lazily on every invocation, short-circuiting in construction order.
//
// Basic usage:
//
//	isOpen := spec.Predicate[Account](func(a Account) bool { return !a.Closed })
//	isFunded := spec.Predicate[Account](func(a Account) bool { return a.Balance > 0 })
//
//	canWithdraw := spec.And(isOpen, isFunded)
//	isDormant := spec.Not(canWithdraw)
//
//	if canWithdraw.SatisfiedBy(account) {
//		// handle the withdrawal
//	}
package spec
