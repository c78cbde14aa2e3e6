package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger owns the full account set and is the only component allowed to
// mutate balances, credentials, and histories. The account map is fixed at
// construction; accounts are never created or deleted during a session, so
// lookups need no synchronization. Per-account state is serialized by each
// account's lock; Transfer takes both locks in lexicographic account-number
// order to stay deadlock-free.
type Ledger struct {
	accounts     map[string]*account
	logInquiries bool
	now          func() time.Time
}

// TransferResult carries both post-transfer balances.
type TransferResult struct {
	FromBalance decimal.Decimal `json:"fromBalance"`
	ToBalance   decimal.Decimal `json:"toBalance"`
}

// New provisions a ledger from explicit account seeds. Seeds must have
// unique, non-empty numbers, four-digit PINs, and non-negative balances;
// any violation rejects the whole set.
func New(seeds []AccountSeed, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		accounts:     make(map[string]*account, len(seeds)),
		logInquiries: true,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	for _, seed := range seeds {
		if err := seed.validate(); err != nil {
			return nil, err
		}

		if _, exists := l.accounts[seed.Number]; exists {
			return nil, NewDomainError(ErrorInvalidSeed, "number", "duplicate account number "+seed.Number)
		}

		l.accounts[seed.Number] = newAccount(seed)
	}

	return l, nil
}

// Authenticate reports whether an account with the given number exists and
// its PIN matches exactly. It is pure: no state change, no history entry.
// The credential is read under the account lock so a concurrent ChangePIN
// never races the compare.
func (l *Ledger) Authenticate(number, pin string) bool {
	a, ok := l.accounts[number]
	if !ok {
		return false
	}

	_ = a.acquire(context.Background())
	defer a.release()

	return pinEqual(a.pin, pin)
}

// Deposit credits amount to the account and returns the new balance.
func (l *Ledger) Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, NewDomainError(ErrorInvalidAmount, "amount", "amount must be greater than zero")
	}

	a, err := l.lookup(number)
	if err != nil {
		return decimal.Zero, err
	}

	if err := a.acquire(ctx); err != nil {
		return decimal.Zero, err
	}
	defer a.release()

	a.balance = a.balance.Add(amount)
	a.append(newEntry(EntryDeposit, amount, a.balance, "", l.now()))

	return a.balance, nil
}

// Withdraw debits amount from the account and returns the new balance. The
// balance never goes negative; an overdraw is rejected with no state change.
func (l *Ledger) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, NewDomainError(ErrorInvalidAmount, "amount", "amount must be greater than zero")
	}

	a, err := l.lookup(number)
	if err != nil {
		return decimal.Zero, err
	}

	if err := a.acquire(ctx); err != nil {
		return decimal.Zero, err
	}
	defer a.release()

	if amount.GreaterThan(a.balance) {
		return decimal.Zero, NewDomainError(ErrorInsufficientFunds, "amount", "withdrawal exceeds available balance")
	}

	a.balance = a.balance.Sub(amount)
	a.append(newEntry(EntryWithdrawal, amount, a.balance, "", l.now()))

	return a.balance, nil
}

// Transfer atomically moves amount from one account to another. Either both
// balances change and both accounts gain exactly one entry, or nothing does.
// Self-transfer is rejected here, not left to callers.
func (l *Ledger) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, NewDomainError(ErrorInvalidAmount, "amount", "amount must be greater than zero")
	}

	if from == to {
		return TransferResult{}, NewDomainError(ErrorSelfTransfer, "to", "source and destination accounts are identical")
	}

	src, err := l.lookup(from)
	if err != nil {
		return TransferResult{}, err
	}

	dst, err := l.lookup(to)
	if err != nil {
		return TransferResult{}, err
	}

	// Fixed global lock order: lexicographic by account number.
	first, second := src, dst
	if second.number < first.number {
		first, second = second, first
	}

	if err := first.acquire(ctx); err != nil {
		return TransferResult{}, err
	}
	defer first.release()

	if err := second.acquire(ctx); err != nil {
		return TransferResult{}, err
	}
	defer second.release()

	if amount.GreaterThan(src.balance) {
		return TransferResult{}, NewDomainError(ErrorInsufficientFunds, "amount", "transfer exceeds available balance")
	}

	src.balance = src.balance.Sub(amount)
	dst.balance = dst.balance.Add(amount)

	// One timestamp for both sides of the movement.
	now := l.now()
	src.append(newEntry(EntryTransferOut, amount, src.balance, dst.number, now))
	dst.append(newEntry(EntryTransferIn, amount, dst.balance, src.number, now))

	return TransferResult{FromBalance: src.balance, ToBalance: dst.balance}, nil
}

// ChangePIN replaces the account credential after verifying the current PIN
// and the four-digit format of the new one. A PIN_CHANGE entry with zero
// amount is appended; the PIN values themselves are never recorded.
func (l *Ledger) ChangePIN(ctx context.Context, number, currentPIN, newPIN string) error {
	a, err := l.lookup(number)
	if err != nil {
		return err
	}

	if err := a.acquire(ctx); err != nil {
		return err
	}
	defer a.release()

	if !pinEqual(a.pin, currentPIN) {
		return NewDomainError(ErrorPINMismatch, "currentPin", "current PIN verification failed")
	}

	if err := ValidatePINFormat(newPIN); err != nil {
		return err
	}

	a.pin = newPIN
	a.append(newEntry(EntryPINChange, decimal.Zero, a.balance, "", l.now()))

	return nil
}

// RecordInquiry returns the current balance and, when the inquiry-logging
// policy is enabled, appends a BALANCE_INQUIRY entry.
func (l *Ledger) RecordInquiry(ctx context.Context, number string) (decimal.Decimal, error) {
	a, err := l.lookup(number)
	if err != nil {
		return decimal.Zero, err
	}

	if err := a.acquire(ctx); err != nil {
		return decimal.Zero, err
	}
	defer a.release()

	if l.logInquiries {
		a.append(newEntry(EntryBalanceInquiry, decimal.Zero, a.balance, "", l.now()))
	}

	return a.balance, nil
}

// History returns up to limit entries, most recent first. The returned slice
// is a snapshot; later ledger activity does not mutate it.
func (l *Ledger) History(ctx context.Context, number string, limit int) ([]Entry, error) {
	a, err := l.lookup(number)
	if err != nil {
		return nil, err
	}

	if err := a.acquire(ctx); err != nil {
		return nil, err
	}
	defer a.release()

	return a.recent(limit), nil
}

// Summary returns the account's presentation view: number, holder name, and
// current balance.
func (l *Ledger) Summary(ctx context.Context, number string) (Summary, error) {
	a, err := l.lookup(number)
	if err != nil {
		return Summary{}, err
	}

	if err := a.acquire(ctx); err != nil {
		return Summary{}, err
	}
	defer a.release()

	return a.summary(), nil
}

// TotalBalance sums all account balances. Each account is read under its own
// lock, one at a time; with mutations quiesced the sum is exact, which is
// what conservation checks need.
func (l *Ledger) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, a := range l.accounts {
		if err := a.acquire(ctx); err != nil {
			return decimal.Zero, err
		}

		total = total.Add(a.balance)
		a.release()
	}

	return total, nil
}

func (l *Ledger) lookup(number string) (*account, error) {
	a, ok := l.accounts[number]
	if !ok {
		return nil, NewDomainError(ErrorAccountNotFound, "number", "account not found")
	}

	return a, nil
}
