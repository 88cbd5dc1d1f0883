package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/rsilva/bankapi/internal/adapter/http"
	"github.com/rsilva/bankapi/internal/adapter/http/handler"
	"github.com/rsilva/bankapi/internal/adapter/repository/postgres"
	redisrepo "github.com/rsilva/bankapi/internal/adapter/repository/redis"
	infraredis "github.com/rsilva/bankapi/internal/infrastructure/redis"
	"github.com/rsilva/bankapi/internal/usecase"
	"github.com/rsilva/bankapi/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database and a
// real Redis instance.
func newTestRouter(t *testing.T, ctx context.Context, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	// Cached accounts from a previous run would shadow the freshly
	// truncated database.
	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}

	pool := testDB.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	accountCache := redisrepo.NewCache(redisClient)
	accountUC := usecase.NewAccountUseCase(accountRepo).
		WithCache(accountCache, time.Minute)
	transactionUC := usecase.NewTransactionUseCase(
		postgres.NewTxManager(pool),
		accountRepo,
		postgres.NewRetrier(),
		postgres.NewULIDGenerator(),
	).WithCache(accountCache)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
		Logger:             zerolog.Nop(),
	})
}
