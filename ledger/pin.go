package ledger

import (
	"crypto/subtle"
	"regexp"
)

// pinPattern is the static credential format policy: exactly four digits.
var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidatePINFormat checks a candidate PIN against the four-digit policy.
// The rejected value is never echoed back in the error.
func ValidatePINFormat(pin string) error {
	if !pinPattern.MatchString(pin) {
		return NewDomainError(ErrorInvalidPINFormat, "pin", "PIN must be exactly 4 digits")
	}

	return nil
}

// pinEqual compares a stored PIN with caller input without leaking match
// position through timing. Mismatched lengths compare unequal.
func pinEqual(stored, input string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(input)) == 1
}
