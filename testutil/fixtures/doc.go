// Package fixtures provides account-domain test data builders and journal
// arrangement helpers shared across the test suites.
//
// The Given* helpers append events through the real journal so integration
// tests can arrange entity state the same way production code writes it.
package fixtures
