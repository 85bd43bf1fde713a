// Package openaccount implements the Open Account use case.
//
// This feature opens a new bank account for a holder in a single currency.
// It follows the Events-Decode-Decide-Append pattern with proper separation between
// infrastructure concerns (CommandHandler) and pure business logic (Decide function).
//
// The business logic ensures idempotency - attempting to open an account that
// is already open results in a no-op (no events generated). Accounts that were
// closed stay closed and cannot be reopened.
package openaccount
