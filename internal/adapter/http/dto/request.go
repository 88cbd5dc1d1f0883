package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Number       int64           `json:"number"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	SpecialLimit decimal.Decimal `json:"special_limit"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Number:       r.Number,
		Name:         r.Name,
		Balance:      r.Balance,
		SpecialLimit: r.SpecialLimit,
	}
}

// UpdateAccountRequest represents a request to update an account's
// mutable fields. Balance changes only happen through transactions.
type UpdateAccountRequest struct {
	Name         string          `json:"name"`
	SpecialLimit decimal.Decimal `json:"special_limit"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Name:         r.Name,
		SpecialLimit: r.SpecialLimit,
	}
}

// DepositRequest represents a request to credit an account.
type DepositRequest struct {
	ReceiverAccountNumber int64           `json:"receiver_account_number"`
	Amount                decimal.Decimal `json:"amount"`
}

// WithdrawRequest represents a request to debit an account.
type WithdrawRequest struct {
	SourceAccountNumber int64           `json:"source_account_number"`
	Amount              decimal.Decimal `json:"amount"`
}

// TransferRequest represents a request to move funds between accounts.
type TransferRequest struct {
	SourceAccountNumber   int64           `json:"source_account_number"`
	ReceiverAccountNumber int64           `json:"receiver_account_number"`
	Amount                decimal.Decimal `json:"amount"`
}
