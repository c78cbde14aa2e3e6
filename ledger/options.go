package ledger

import "time"

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithInquiryLogging controls whether RecordInquiry appends a
// BALANCE_INQUIRY entry to history. Enabled by default.
func WithInquiryLogging(enabled bool) Option {
	return func(l *Ledger) {
		l.logInquiries = enabled
	}
}

// WithClock overrides the time source used to stamp entries. The clock must
// be non-decreasing or per-account history timestamps lose their ordering
// guarantee. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}
