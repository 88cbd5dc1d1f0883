package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/usecase"
)

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccountRequest{
		Number:       12346,
		Name:         "Lauro Lima",
		Balance:      decimal.NewFromInt(1000),
		SpecialLimit: decimal.NewFromInt(200),
	}

	got := req.ToUseCaseInput()

	if got.Number != 12346 || got.Name != "Lauro Lima" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if !got.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("balance = %s, want 1000", got.Balance)
	}
	if !got.SpecialLimit.Equal(decimal.NewFromInt(200)) {
		t.Errorf("special limit = %s, want 200", got.SpecialLimit)
	}
}

func TestUpdateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &UpdateAccountRequest{
		Name:         "Renamed",
		SpecialLimit: decimal.NewFromInt(500),
	}

	got := req.ToUseCaseInput()

	want := usecase.UpdateAccountInput{
		Name:         "Renamed",
		SpecialLimit: decimal.NewFromInt(500),
	}
	if got.Name != want.Name || !got.SpecialLimit.Equal(want.SpecialLimit) {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestTransferRequestDecoding(t *testing.T) {
	body := `{"source_account_number":12346,"receiver_account_number":12347,"amount":"200.50"}`

	var req TransferRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if req.SourceAccountNumber != 12346 || req.ReceiverAccountNumber != 12347 {
		t.Fatalf("unexpected account numbers: %+v", req)
	}
	if !req.Amount.Equal(decimal.RequireFromString("200.50")) {
		t.Errorf("amount = %s, want 200.50", req.Amount)
	}
}

func TestTransferRequestEmptyBody(t *testing.T) {
	var req TransferRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// Zero values flow through; the engine rejects the zero amount.
	if !req.Amount.IsZero() || req.SourceAccountNumber != 0 {
		t.Fatalf("expected zero values, got %+v", req)
	}
}
