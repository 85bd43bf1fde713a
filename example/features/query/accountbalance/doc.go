// Package accountbalance implements the Account Balance query.
//
// The balance can be answered two ways: on demand by replaying the account's
// journal records through a pure projection (QueryHandler), or continuously
// by a read model that subscribes to the account.money event family and keeps
// balances current as commands publish their events (BalanceReadModel).
package accountbalance
