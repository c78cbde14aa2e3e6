package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode is a domain error code used by ledger validations.
type ErrorCode string

const (
	// ErrorAccountNotFound indicates the referenced account number has no match.
	ErrorAccountNotFound ErrorCode = "0001"
	// ErrorInvalidAmount indicates a non-positive monetary amount.
	ErrorInvalidAmount ErrorCode = "0002"
	// ErrorInsufficientFunds indicates the source balance cannot cover the amount.
	ErrorInsufficientFunds ErrorCode = "0003"
	// ErrorInvalidPINFormat indicates a new PIN fails the four-digit policy.
	ErrorInvalidPINFormat ErrorCode = "0004"
	// ErrorPINMismatch indicates the supplied current PIN does not match.
	ErrorPINMismatch ErrorCode = "0005"
	// ErrorSelfTransfer indicates source and destination accounts are identical.
	ErrorSelfTransfer ErrorCode = "0006"
	// ErrorOperationAborted indicates the caller gave up while waiting for an
	// account lock; no state was modified.
	ErrorOperationAborted ErrorCode = "0007"
	// ErrorInvalidSeed indicates a provisioning seed was rejected.
	ErrorInvalidSeed ErrorCode = "0008"
)

// DomainError represents a structured ledger validation error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

// CodeOf extracts the ErrorCode from err. The second return is false when err
// does not wrap a DomainError.
func CodeOf(err error) (ErrorCode, bool) {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, true
	}

	return "", false
}
