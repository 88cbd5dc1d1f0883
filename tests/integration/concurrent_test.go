package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/adapter/repository/postgres"
	"github.com/rsilva/bankapi/internal/domain"
	"github.com/rsilva/bankapi/internal/usecase"
	"github.com/rsilva/bankapi/tests/testutil"
)

func TestConcurrentTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	pool := testDB.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	transactionUC := usecase.NewTransactionUseCase(
		postgres.NewTxManager(pool),
		accountRepo,
		postgres.NewRetrier(),
		postgres.NewULIDGenerator(),
	)

	t.Run("100 concurrent transfers drain the source exactly", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestAccount(ctx, 30001, "source", decimal.NewFromInt(1000))
		testDB.CreateTestAccount(ctx, 30002, "dest", decimal.Zero)

		numTransfers := 100
		amount := decimal.NewFromInt(10)

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
			errorCount   atomic.Int32
		)

		wg.Add(numTransfers)
		for range numTransfers {
			go func() {
				defer wg.Done()

				_, err := transactionUC.Transfer(ctx, usecase.TransferInput{
					SourceNumber:   30001,
					ReceiverNumber: 30002,
					Amount:         amount,
				})
				if err != nil {
					errorCount.Add(1)
				} else {
					successCount.Add(1)
				}
			}()
		}
		wg.Wait()

		if successCount.Load() != int32(numTransfers) {
			t.Errorf("expected %d successful transfers, got %d (errors: %d)",
				numTransfers, successCount.Load(), errorCount.Load())
		}

		source, _ := accountRepo.GetByNumber(ctx, 30001)
		dest, _ := accountRepo.GetByNumber(ctx, 30002)

		if !source.Balance.Equal(decimal.Zero) {
			t.Errorf("expected source balance 0, got %s", source.Balance)
		}
		if !dest.Balance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected dest balance 1000, got %s", dest.Balance)
		}
	})

	t.Run("concurrent withdrawals never exceed available funds", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		// 100 balance plus 100 overdraft: at most 20 withdrawals of 10.
		testDB.CreateTestAccountWithLimit(ctx, 30003, "overdraft", decimal.NewFromInt(100), decimal.NewFromInt(100))

		numWithdrawals := 40
		amount := decimal.NewFromInt(10)

		var (
			wg                sync.WaitGroup
			successCount      atomic.Int32
			insufficientCount atomic.Int32
		)

		wg.Add(numWithdrawals)
		for range numWithdrawals {
			go func() {
				defer wg.Done()

				_, err := transactionUC.Withdraw(ctx, usecase.WithdrawInput{
					SourceNumber: 30003,
					Amount:       amount,
				})
				switch {
				case err == nil:
					successCount.Add(1)
				case errors.Is(err, domain.ErrInsufficientFunds):
					insufficientCount.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if successCount.Load() != 20 {
			t.Errorf("expected exactly 20 withdrawals to succeed, got %d (insufficient: %d)",
				successCount.Load(), insufficientCount.Load())
		}

		account, err := accountRepo.GetByNumber(ctx, 30003)
		if err != nil {
			t.Fatalf("failed to fetch account: %v", err)
		}
		if !account.Balance.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("expected balance -100, got %s", account.Balance)
		}
		if account.Balance.LessThan(account.SpecialLimit.Neg()) {
			t.Errorf("balance %s dropped below -special_limit %s", account.Balance, account.SpecialLimit)
		}
	})

	t.Run("opposing transfers between two accounts keep the sum", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		testDB.CreateTestAccount(ctx, 30004, "a", decimal.NewFromInt(500))
		testDB.CreateTestAccount(ctx, 30005, "b", decimal.NewFromInt(500))

		numPairs := 25
		amount := decimal.NewFromInt(5)

		var wg sync.WaitGroup
		wg.Add(numPairs * 2)
		for range numPairs {
			go func() {
				defer wg.Done()
				_, _ = transactionUC.Transfer(ctx, usecase.TransferInput{
					SourceNumber: 30004, ReceiverNumber: 30005, Amount: amount,
				})
			}()
			go func() {
				defer wg.Done()
				_, _ = transactionUC.Transfer(ctx, usecase.TransferInput{
					SourceNumber: 30005, ReceiverNumber: 30004, Amount: amount,
				})
			}()
		}
		wg.Wait()

		a, _ := accountRepo.GetByNumber(ctx, 30004)
		b, _ := accountRepo.GetByNumber(ctx, 30005)

		if !a.Balance.Add(b.Balance).Equal(decimal.NewFromInt(1000)) {
			t.Errorf("total balance drifted: %s + %s", a.Balance, b.Balance)
		}
	})
}
