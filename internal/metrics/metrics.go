// Package metrics instruments the engine with Prometheus collectors. Unlike
// the teacher's HTTP service, this process never binds a listener: the
// collectors live on a private, non-default registry and are rendered as a
// plain text exposition to stderr once the run completes, respecting the
// no-network-surface constraint on the ledger.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/robertohuertasm/payments-engine/internal/domain/models"
)

// Collectors bundles every metric the engine drives.
type Collectors struct {
	registry *prometheus.Registry

	processedTotal *prometheus.CounterVec
	failedTotal    *prometheus.CounterVec
	rollbacksTotal *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	accountsLocked prometheus.Counter
}

// New registers every collector on a fresh, private registry.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collectors{
		registry: reg,
		processedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_transactions_processed_total",
			Help: "Total number of transactions successfully applied, by kind.",
		}, []string{"kind"}),
		failedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_transactions_failed_total",
			Help: "Total number of transactions rejected, by kind and failure reason.",
		}, []string{"kind", "reason"}),
		rollbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_rollbacks_total",
			Help: "Total number of compensating rollbacks performed, by kind.",
		}, []string{"kind"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "payments_transaction_duration_seconds",
			Help:    "Time to process a single transaction end to end.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		accountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "payments_accounts_locked_total",
			Help: "Total number of accounts that transitioned into the locked state.",
		}),
	}
}

// ObserveProcessed increments the processed counter for kind.
func (c *Collectors) ObserveProcessed(kind models.Kind) {
	c.processedTotal.WithLabelValues(kind.String()).Inc()
}

// ObserveFailed increments the failed counter for kind/reason.
func (c *Collectors) ObserveFailed(kind models.Kind, reason string) {
	c.failedTotal.WithLabelValues(kind.String(), reason).Inc()
}

// ObserveRollback increments the rollback counter for kind.
func (c *Collectors) ObserveRollback(kind models.Kind) {
	c.rollbacksTotal.WithLabelValues(kind.String()).Inc()
}

// ObserveLocked increments the accounts-locked counter.
func (c *Collectors) ObserveLocked() {
	c.accountsLocked.Inc()
}

// ObserveDuration records how long processing kind took.
func (c *Collectors) ObserveDuration(kind models.Kind, seconds float64) {
	c.duration.WithLabelValues(kind.String()).Observe(seconds)
}

// WriteTo renders every collected metric as Prometheus text exposition
// format to w.
func (c *Collectors) WriteTo(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
