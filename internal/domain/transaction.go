package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of money movement.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Transaction represents a money movement. It is built per request and
// returned as the operation result with post-mutation account snapshots;
// it is never stored.
type Transaction struct {
	ID              string
	Type            TransactionType
	SourceAccount   *Account
	ReceiverAccount *Account
	Amount          decimal.Decimal
	CreatedAt       time.Time
}

// Validate checks the transaction shape: a positive amount and the account
// references its type requires.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	switch t.Type {
	case TransactionDeposit:
		if t.ReceiverAccount == nil {
			return ErrMissingReceiverAccount
		}
	case TransactionWithdraw:
		if t.SourceAccount == nil {
			return ErrMissingSourceAccount
		}
	case TransactionTransfer:
		if t.SourceAccount == nil {
			return ErrMissingSourceAccount
		}
		if t.ReceiverAccount == nil {
			return ErrMissingReceiverAccount
		}
		if t.SourceAccount.Number == t.ReceiverAccount.Number {
			return ErrSameAccount
		}
	default:
		return ErrUnknownTransactionType
	}

	return nil
}
