// Package depositmoney implements the Deposit Money use case.
//
// This feature credits an open bank account with an amount in the account's
// currency. It follows the Events-Decode-Decide-Append pattern with proper
// separation between infrastructure concerns (CommandHandler) and pure
// business logic (Decide function).
//
// Deposits are not idempotent - every accepted command appends a new
// MoneyDeposited event. Deposits to accounts that are not open or in a
// foreign currency are rejected without leaving a trace in the journal.
package depositmoney
