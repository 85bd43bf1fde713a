// Package core contains the domain model for the example:
// A bank account with deposits and withdrawals.
//
// Events represent meaningful business occurrences like AccountOpened and
// MoneyWithdrawn rather than generic create/update operations. All of them
// implement the domain.Event interface with EventType() and HasOccurredAt()
// methods, using dot-separated type tags so subscribers can match whole
// families of events ("account.money" matches deposits and withdrawals).
//
// Besides the events, the package holds the Money value object, the
// AccountState projection, and the specification-based withdrawal policy.
// Everything in here is pure: no I/O, no side effects.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'domain' layer.
package core
