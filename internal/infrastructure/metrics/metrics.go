package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsProcessed *prometheus.CounterVec
	TransactionDuration   *prometheus.HistogramVec
	TransactionAmount     *prometheus.HistogramVec
	TransactionErrors     *prometheus.CounterVec

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountsDeleted   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Redis metrics
	IdempotencyHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankapi_transactions_total",
				Help: "Total number of processed transactions by type",
			},
			[]string{"type"},
		),
		TransactionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankapi_transaction_duration_seconds",
				Help:    "Duration of transaction operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankapi_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankapi_transaction_errors_total",
				Help: "Total number of transaction errors by type",
			},
			[]string{"type", "error_type"},
		),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankapi_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankapi_accounts_deleted_total",
			Help: "Total number of accounts deleted",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankapi_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		IdempotencyHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankapi_idempotency_hits_total",
			Help: "Total requests served from the idempotency store",
		}),
	}
}
