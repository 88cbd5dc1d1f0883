package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account identified by its caller-assigned number.
type Account struct {
	Number       int64
	Name         string
	Balance      decimal.Decimal
	SpecialLimit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvailableFunds returns the funds the account can spend. The special limit
// acts as an overdraft allowance, so the balance may go negative down to its
// negation but never past it.
func (a *Account) AvailableFunds() decimal.Decimal {
	return a.Balance.Add(a.SpecialLimit)
}

// ValidateDebit checks if the account can be debited by amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.AvailableFunds().LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns new balance after debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns new balance after credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
