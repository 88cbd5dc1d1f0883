package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/adapter/http/dto"
	"github.com/rsilva/bankapi/internal/domain"
	"github.com/rsilva/bankapi/internal/usecase"
)

type transactionServiceStub struct {
	depositFn  func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	withdrawFn func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error)
	transferFn func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error)
}

func (s *transactionServiceStub) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
	return s.depositFn(ctx, input)
}

func (s *transactionServiceStub) Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
	return s.withdrawFn(ctx, input)
}

func (s *transactionServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
	return s.transferFn(ctx, input)
}

func TestTransactionHandler_Deposit_Success(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:     "01ABC",
				Type:   domain.TransactionDeposit,
				Amount: input.Amount,
				ReceiverAccount: &domain.Account{
					Number:  input.ReceiverNumber,
					Balance: decimal.NewFromInt(1200),
				},
			}, nil
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{
		ReceiverAccountNumber: 12346,
		Amount:                decimal.NewFromInt(200),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "DEPOSIT" || resp.ReceiverAccount == nil || resp.ReceiverAccount.Number != 12346 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.SourceAccount != nil {
		t.Fatalf("deposit response should omit source account, got %+v", resp.SourceAccount)
	}
}

func TestTransactionHandler_Deposit_UnknownAccount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			return nil, &domain.NotFoundError{Number: input.ReceiverNumber}
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{
		ReceiverAccountNumber: 99999,
		Amount:                decimal.NewFromInt(50),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Account 99999 not found" {
		t.Fatalf("unexpected error message: %s", resp.Error)
	}
}

func TestTransactionHandler_Withdraw_InsufficientFunds(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
			return nil, domain.ErrInsufficientFunds
		},
	})

	body, _ := json.Marshal(dto.WithdrawRequest{
		SourceAccountNumber: 12346,
		Amount:              decimal.NewFromInt(5000),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/withdraw", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "No balance in account" {
		t.Fatalf("unexpected error message: %s", resp.Error)
	}
}

func TestTransactionHandler_Withdraw_InvalidJSON(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
			t.Fatal("Withdraw should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions/withdraw", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Transfer_Success(t *testing.T) {
	var captured usecase.TransferInput
	handler := NewTransactionHandler(&transactionServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			captured = input
			return &domain.Transaction{
				ID:              "01DEF",
				Type:            domain.TransactionTransfer,
				Amount:          input.Amount,
				SourceAccount:   &domain.Account{Number: input.SourceNumber, Balance: decimal.NewFromInt(800)},
				ReceiverAccount: &domain.Account{Number: input.ReceiverNumber, Balance: decimal.NewFromInt(1200)},
			}, nil
		},
	})

	body, _ := json.Marshal(dto.TransferRequest{
		SourceAccountNumber:   12346,
		ReceiverAccountNumber: 12347,
		Amount:                decimal.NewFromInt(200),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.SourceNumber != 12346 || captured.ReceiverNumber != 12347 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.SourceAccount.Balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected source balance 800, got %s", resp.SourceAccount.Balance)
	}
	if !resp.ReceiverAccount.Balance.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected receiver balance 1200, got %s", resp.ReceiverAccount.Balance)
	}
}

func TestTransactionHandler_Transfer_SameAccount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			return nil, domain.ErrSameAccount
		},
	})

	body, _ := json.Marshal(dto.TransferRequest{
		SourceAccountNumber:   12346,
		ReceiverAccountNumber: 12346,
		Amount:                decimal.NewFromInt(10),
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Transfer_EmptyBody(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	// {} decodes fine but carries a zero amount, which must be rejected.
	req := httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	handler.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
