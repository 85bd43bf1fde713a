// Package journal defines the serialization boundary between domain events
// and durable storage.
//
// Records are flat DTOs built on scalars so storage engines stay agnostic of
// how client code implements its domain events. A codec Registry maps event
// types back to decode functions, Selection describes which slice of the
// journal to read, and the observability interfaces let engines report to any
// logging, metrics, or tracing backend without depending on one.
//
// Basic usage:
//
//	registry := journal.BuildRegistry()
//	if err := registry.Register("account.opened", decodeAccountOpened); err != nil {
//		return err
//	}
//
//	selection := journal.BuildSelection().ForEntity(accountID).Finalize()
//	records, version, err := engine.Events(ctx, selection)
//	if err != nil {
//		return err
//	}
//
//	history, err := registry.DecodeAll(records)
package journal
