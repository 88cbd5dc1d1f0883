package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.TransactionsProcessed == nil || m.TransactionErrors == nil {
		t.Fatalf("transaction metrics not initialized: %+v", m)
	}
	if m.AccountsCreated == nil || m.AccountsDeleted == nil || m.AccountOperations == nil {
		t.Fatalf("account metrics not initialized: %+v", m)
	}
	if m.IdempotencyHits == nil {
		t.Fatalf("idempotency metric not initialized: %+v", m)
	}

	// Counters only show up in Gather once incremented.
	m.AccountsCreated.Inc()
	m.TransactionsProcessed.WithLabelValues("DEPOSIT").Inc()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metrics, got none")
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "bankapi_") {
			t.Errorf("metric %q missing bankapi_ prefix", family.GetName())
		}
	}
}
