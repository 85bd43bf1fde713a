// Package domain provides the core tactical Domain-Driven Design contracts:
// domain events with a synchronous publisher/subscriber registry, entity
// identity, versioned entities, and value-object equality.
//
// Events carry dot-separated type tags forming an open hierarchy, so a
// subscriber interested in "account" receives "account.opened" as well as
// "account.money.deposited", and a subscriber interested in the universal
// marker "*" receives every event. Dispatch is a plain tag comparison,
// never reflection over Go types.
//
// Identity and equality are interface-level contracts: entities expose their
// ID (and optionally a version), value objects expose the ordered components
// that define their equality, and the package provides the generic
// comparison helpers over those contracts.
//
// Common usage pattern:
//
//	publisher, err := domain.BuildEventPublisher()
//	if err != nil {
//		// handle error
//	}
//
//	err = publisher.Subscribe(domain.SubscribeFunc("account.money", func(ctx context.Context, event domain.Event) error {
//		// react to every event in the account.money family
//		return nil
//	}))
//
//	err = publisher.Publish(ctx, core.BuildMoneyDeposited(accountID, amount, time.Now()))
package domain
