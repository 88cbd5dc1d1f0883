package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number       int64           `json:"number"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	SpecialLimit decimal.Decimal `json:"special_limit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Number:       a.Number,
		Name:         a.Name,
		Balance:      a.Balance,
		SpecialLimit: a.SpecialLimit,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a processed transaction in API responses.
type TransactionResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	SourceAccount   *AccountResponse `json:"source_account,omitempty"`
	ReceiverAccount *AccountResponse `json:"receiver_account,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	CreatedAt       time.Time        `json:"created_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:        t.ID,
		Type:      string(t.Type),
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
	}
	if t.SourceAccount != nil {
		resp.SourceAccount = AccountFromDomain(t.SourceAccount)
	}
	if t.ReceiverAccount != nil {
		resp.ReceiverAccount = AccountFromDomain(t.ReceiverAccount)
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
