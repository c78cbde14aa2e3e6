package ledger

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountSeed is the provisioning input for one account. The ledger takes an
// explicit seed list instead of hiding a hard-coded fixture, so tests and
// deployments inject whatever account set they need.
type AccountSeed struct {
	Number     string
	PIN        string
	Balance    decimal.Decimal
	HolderName string
}

// validate rejects seeds that would break ledger invariants before any
// account is materialized.
func (s AccountSeed) validate() error {
	if strings.TrimSpace(s.Number) == "" {
		return NewDomainError(ErrorInvalidSeed, "number", "account number is required")
	}

	if strings.TrimSpace(s.HolderName) == "" {
		return NewDomainError(ErrorInvalidSeed, "holderName", "holder name is required")
	}

	if err := ValidatePINFormat(s.PIN); err != nil {
		return NewDomainError(ErrorInvalidSeed, "pin", "seed PIN must be exactly 4 digits")
	}

	if s.Balance.IsNegative() {
		return NewDomainError(ErrorInvalidSeed, "balance", "initial balance must not be negative")
	}

	return nil
}

// Summary is the read-only account view handed to presentation layers. It
// carries no credential material.
type Summary struct {
	Number     string          `json:"number"`
	HolderName string          `json:"holderName"`
	Balance    decimal.Decimal `json:"balance"`
}

// account is the internal mutable account state. All fields except number,
// holder, and slot are guarded by the slot semaphore.
type account struct {
	number  string
	holder  string
	pin     string
	balance decimal.Decimal
	entries []Entry

	// slot is a one-place semaphore serializing all access to mutable state.
	// A channel rather than sync.Mutex so acquisition can respect context
	// cancellation while waiting.
	slot chan struct{}
}

func newAccount(seed AccountSeed) *account {
	return &account{
		number:  seed.Number,
		holder:  seed.HolderName,
		pin:     seed.PIN,
		balance: seed.Balance,
		slot:    make(chan struct{}, 1),
	}
}

// acquire takes the account lock, giving up when ctx is done. A rejected
// acquisition leaves the account untouched.
func (a *account) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return NewDomainError(ErrorOperationAborted, "", "canceled while waiting for account "+a.number)
	}

	select {
	case a.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return NewDomainError(ErrorOperationAborted, "", "canceled while waiting for account "+a.number)
	}
}

func (a *account) release() {
	<-a.slot
}

// append records an entry; it never fails, reorders, or removes.
// Caller holds the lock.
func (a *account) append(entry Entry) {
	a.entries = append(a.entries, entry)
}

// recent returns up to limit entries, most recent first, as copies detached
// from the internal log. Caller holds the lock.
func (a *account) recent(limit int) []Entry {
	if limit < 0 {
		limit = 0
	}

	if limit > len(a.entries) {
		limit = len(a.entries)
	}

	out := make([]Entry, 0, limit)
	for i := len(a.entries) - 1; i >= len(a.entries)-limit; i-- {
		out = append(out, a.entries[i])
	}

	return out
}

// summary returns the caller-facing view. Caller holds the lock.
func (a *account) summary() Summary {
	return Summary{Number: a.number, HolderName: a.holder, Balance: a.balance}
}
