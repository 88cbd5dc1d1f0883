package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rsilva/bankapi/internal/domain"
	"github.com/rsilva/bankapi/internal/infrastructure/metrics"
)

// AccountUseCase handles account management.
type AccountUseCase struct {
	accountRepo AccountRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// WithCache enables read-through caching of account lookups. Updates and
// deletes drop the cached entry; the transaction engine drops entries for
// accounts it moves money on.
func (uc *AccountUseCase) WithCache(cache Cache, ttl time.Duration) *AccountUseCase {
	uc.cache = cache
	uc.cacheTTL = ttl
	return uc
}

// WithMetrics enables Prometheus instrumentation of account operations.
func (uc *AccountUseCase) WithMetrics(m *metrics.Metrics) *AccountUseCase {
	uc.metrics = m
	return uc
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Number       int64
	Name         string
	Balance      decimal.Decimal
	SpecialLimit decimal.Decimal
}

// CreateAccount creates a new account with the caller-assigned number and
// initial balance. Fails with domain.DuplicateAccountError when the number
// is already taken.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountNumber(input.Number); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateSpecialLimit(input.SpecialLimit); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		Number:       input.Number,
		Name:         input.Name,
		Balance:      input.Balance,
		SpecialLimit: input.SpecialLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number int64) (*domain.Account, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, accountCacheKey(number)); err == nil {
			var account domain.Account
			if err := json.Unmarshal([]byte(cached), &account); err == nil {
				return &account, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			_ = uc.cache.Set(ctx, accountCacheKey(number), string(data), uc.cacheTTL)
		}
	}

	return account, nil
}

func accountCacheKey(number int64) string {
	return "account:" + strconv.FormatInt(number, 10)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts in insertion order with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// UpdateAccountInput represents input for updating an account.
type UpdateAccountInput struct {
	Name         string
	SpecialLimit decimal.Decimal
}

// UpdateAccount replaces the mutable fields of an existing account. The
// account must exist; the balance is only ever changed through transactions.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, number int64, input UpdateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateSpecialLimit(input.SpecialLimit); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.SpecialLimit = input.SpecialLimit
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, number)

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues("update").Inc()
	}

	return account, nil
}

// DeleteAccount removes an account. Administrative override only.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, number int64) error {
	if err := uc.accountRepo.Delete(ctx, number); err != nil {
		return err
	}

	uc.invalidate(ctx, number)

	if uc.metrics != nil {
		uc.metrics.AccountsDeleted.Inc()
	}

	return nil
}

func (uc *AccountUseCase) invalidate(ctx context.Context, number int64) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, accountCacheKey(number))
	}
}
