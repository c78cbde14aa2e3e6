package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger event recorded in an account's history.
type EntryKind string

const (
	// EntryDeposit increases the account balance.
	EntryDeposit EntryKind = "DEPOSIT"
	// EntryWithdrawal decreases the account balance.
	EntryWithdrawal EntryKind = "WITHDRAWAL"
	// EntryTransferOut decreases the balance in favor of a counterparty account.
	EntryTransferOut EntryKind = "TRANSFER_OUT"
	// EntryTransferIn increases the balance from a counterparty account.
	EntryTransferIn EntryKind = "TRANSFER_IN"
	// EntryBalanceInquiry records a balance check; it moves no money.
	EntryBalanceInquiry EntryKind = "BALANCE_INQUIRY"
	// EntryPINChange records a credential change; it moves no money.
	EntryPINChange EntryKind = "PIN_CHANGE"
)

// Entry is an immutable record of one ledger event. Amount is zero for
// inquiry and PIN-change entries. Counterparty is set only for the transfer
// kinds and carries the other account's number. BalanceAfter snapshots the
// account balance immediately after the event, so balance-over-time can be
// reconstructed from history alone.
type Entry struct {
	ID           string          `json:"id"`
	Kind         EntryKind       `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Counterparty string          `json:"counterparty,omitempty"`
	At           time.Time       `json:"at"`
}

// newEntry stamps a fresh entry. Callers hold the owning account's lock, so
// timestamps taken here are non-decreasing within one account's history.
func newEntry(kind EntryKind, amount, balanceAfter decimal.Decimal, counterparty string, at time.Time) Entry {
	return Entry{
		ID:           uuid.NewString(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Counterparty: counterparty,
		At:           at,
	}
}
