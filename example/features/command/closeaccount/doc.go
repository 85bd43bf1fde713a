// Package closeaccount implements the Close Account use case.
//
// This feature closes an open bank account once its balance reaches zero.
// It follows the Events-Decode-Decide-Append pattern with proper separation
// between infrastructure concerns (CommandHandler) and pure business logic
// (Decide function).
//
// The business logic ensures idempotency - attempting to close an account
// that is already closed results in a no-op (no events generated).
package closeaccount
