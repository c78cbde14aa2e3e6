// Package ledger implements an in-memory banking ledger: PIN-protected
// accounts holding exact-decimal balances and append-only transaction
// histories.
//
// Core flow:
//   - New provisions the account set from explicit seeds.
//   - Deposit, Withdraw, Transfer, ChangePIN, and RecordInquiry mutate a
//     single account (Transfer: exactly two) atomically and append an Entry
//     describing the event.
//   - History and Summary return snapshot copies; internal state is never
//     aliased outside the ledger.
//
// Every balance stays non-negative, transfers are atomic across both
// accounts, and all rejections leave state untouched. Failures are typed
// domain errors carrying an ErrorCode.
package ledger
