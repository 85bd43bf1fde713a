// Package withdrawmoney implements the Withdraw Money use case.
//
// This feature debits an open bank account, guarded by the composed withdrawal
// policy: the account must be open and held in the withdrawal currency, the
// balance must cover the amount, and the amount must stay within the single
// withdrawal limit. It follows the Events-Decode-Decide-Append pattern with
// proper separation between infrastructure concerns (CommandHandler) and pure
// business logic (Decide function).
//
// Refused withdrawals generate WithdrawalRefused events carrying the violated
// rule, so rejections stay visible in the account history.
package withdrawmoney
