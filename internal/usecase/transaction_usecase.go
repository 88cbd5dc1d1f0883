package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/domain"
	"github.com/rsilva/bankapi/internal/infrastructure/metrics"
)

// TransactionUseCase orchestrates deposits, withdrawals and transfers.
// Every operation runs its read-validate-write sequence under row locks in
// a single database transaction: a movement either fully applies or leaves
// every balance untouched.
type TransactionUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	retrier     Retrier
	idGen       IDGenerator
	cache       Cache
	metrics     *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	retrier Retrier,
	idGen IDGenerator,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		retrier:     retrier,
		idGen:       idGen,
	}
}

// WithCache drops cached account entries after each committed movement so
// lookups never serve stale balances.
func (uc *TransactionUseCase) WithCache(cache Cache) *TransactionUseCase {
	uc.cache = cache
	return uc
}

// WithMetrics enables Prometheus instrumentation of movements.
func (uc *TransactionUseCase) WithMetrics(m *metrics.Metrics) *TransactionUseCase {
	uc.metrics = m
	return uc
}

func (uc *TransactionUseCase) observe(txType domain.TransactionType, amount decimal.Decimal, start time.Time, err error) {
	if uc.metrics == nil {
		return
	}
	label := string(txType)
	if err != nil {
		uc.metrics.TransactionErrors.WithLabelValues(label, errorLabel(err)).Inc()
		return
	}
	uc.metrics.TransactionsProcessed.WithLabelValues(label).Inc()
	uc.metrics.TransactionDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	uc.metrics.TransactionAmount.WithLabelValues(label).Observe(amount.InexactFloat64())
}

func errorLabel(err error) string {
	var notFound *domain.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case domain.IsInvalidRequest(err):
		return "invalid_request"
	default:
		return "internal"
	}
}

func (uc *TransactionUseCase) invalidate(ctx context.Context, numbers ...int64) {
	if uc.cache == nil {
		return
	}
	for _, number := range numbers {
		_ = uc.cache.Delete(ctx, accountCacheKey(number))
	}
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	ReceiverNumber int64
	Amount         decimal.Decimal
}

// Deposit credits amount to the receiver account. Deposits never run a
// funds check.
func (uc *TransactionUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	var result *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		receiver, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, input.ReceiverNumber)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		transaction := &domain.Transaction{
			ID:              uc.idGen.Generate(),
			Type:            domain.TransactionDeposit,
			ReceiverAccount: receiver,
			Amount:          input.Amount,
			CreatedAt:       now,
		}

		if err := transaction.Validate(); err != nil {
			return err
		}

		newBalance := receiver.ApplyCredit(input.Amount)

		if err := uc.accountRepo.UpdateBalance(ctx, tx, receiver.Number, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		receiver.Balance = newBalance
		receiver.UpdatedAt = now
		result = transaction

		return nil
	})
	uc.observe(domain.TransactionDeposit, input.Amount, start, err)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.ReceiverNumber)

	return result, nil
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	SourceNumber int64
	Amount       decimal.Decimal
}

// Withdraw debits amount from the source account. The source must exist
// (checked first) and have available funds covering the amount.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	var result *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		source, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, input.SourceNumber)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		transaction := &domain.Transaction{
			ID:            uc.idGen.Generate(),
			Type:          domain.TransactionWithdraw,
			SourceAccount: source,
			Amount:        input.Amount,
			CreatedAt:     now,
		}

		if err := transaction.Validate(); err != nil {
			return err
		}

		// Funds check runs only after the account resolved.
		if err := source.ValidateDebit(input.Amount); err != nil {
			return err
		}

		newBalance := source.ApplyDebit(input.Amount)

		if err := uc.accountRepo.UpdateBalance(ctx, tx, source.Number, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		source.Balance = newBalance
		source.UpdatedAt = now
		result = transaction

		return nil
	})
	uc.observe(domain.TransactionWithdraw, input.Amount, start, err)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.SourceNumber)

	return result, nil
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	SourceNumber   int64
	ReceiverNumber int64
	Amount         decimal.Decimal
}

// Transfer moves amount between two distinct accounts. Both rows are locked
// in ascending number order and both balance writes commit together or not
// at all.
func (uc *TransactionUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.SourceNumber == input.ReceiverNumber {
		return nil, domain.ErrSameAccount
	}

	numbers := []int64{input.SourceNumber, input.ReceiverNumber}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	var result *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		accounts, err := uc.accountRepo.GetByNumbersForUpdate(ctx, tx, numbers)
		if err != nil {
			return err
		}

		byNumber := make(map[int64]*domain.Account, len(accounts))
		for _, a := range accounts {
			byNumber[a.Number] = a
		}

		// Source existence is reported before the receiver's, and both
		// before any funds check.
		source := byNumber[input.SourceNumber]
		if source == nil {
			return &domain.NotFoundError{Number: input.SourceNumber}
		}

		receiver := byNumber[input.ReceiverNumber]
		if receiver == nil {
			return &domain.NotFoundError{Number: input.ReceiverNumber}
		}

		now := time.Now().UTC()

		transaction := &domain.Transaction{
			ID:              uc.idGen.Generate(),
			Type:            domain.TransactionTransfer,
			SourceAccount:   source,
			ReceiverAccount: receiver,
			Amount:          input.Amount,
			CreatedAt:       now,
		}

		if err := transaction.Validate(); err != nil {
			return err
		}

		if err := source.ValidateDebit(input.Amount); err != nil {
			return err
		}

		sourceBalance := source.ApplyDebit(input.Amount)
		receiverBalance := receiver.ApplyCredit(input.Amount)

		if err := uc.accountRepo.UpdateBalance(ctx, tx, source.Number, sourceBalance, now); err != nil {
			return err
		}

		if err := uc.accountRepo.UpdateBalance(ctx, tx, receiver.Number, receiverBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		source.Balance = sourceBalance
		source.UpdatedAt = now
		receiver.Balance = receiverBalance
		receiver.UpdatedAt = now
		result = transaction

		return nil
	})
	uc.observe(domain.TransactionTransfer, input.Amount, start, err)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.SourceNumber, input.ReceiverNumber)

	return result, nil
}
