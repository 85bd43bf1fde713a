// Package shell connects the pure domain model in example/core to the
// technical infrastructure: it maps domain events to journal records and
// back through a codec registry, and provides retry with exponential
// backoff for optimistic concurrency conflicts.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'application' or 'adapter' layer.
package shell
