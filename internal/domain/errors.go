package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds carries the exact message the API contract fixes
	// for rejected withdrawals and transfers.
	ErrInsufficientFunds = errors.New("No balance in account")

	// Invalid request errors
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrSameAccount            = errors.New("cannot transfer to same account")
	ErrMissingSourceAccount   = errors.New("source account is required")
	ErrMissingReceiverAccount = errors.New("receiver account is required")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)

// NotFoundError reports a reference to an account number that does not exist.
type NotFoundError struct {
	Number int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Account %d not found", e.Number)
}

// DuplicateAccountError reports an account-number collision on creation.
type DuplicateAccountError struct {
	Number int64
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("Account %d already exists", e.Number)
}

// IsInvalidRequest reports whether err is a malformed-input error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSameAccount) ||
		errors.Is(err, ErrMissingSourceAccount) ||
		errors.Is(err, ErrMissingReceiverAccount) ||
		errors.Is(err, ErrUnknownTransactionType) ||
		errors.Is(err, ErrInvalidAccountName) ||
		errors.Is(err, ErrInvalidAccountNumber) ||
		errors.Is(err, ErrInvalidSpecialLimit) ||
		errors.Is(err, ErrAmountTooLarge)
}
