package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// BillsComputedTotal counts bill computations by outcome.
	BillsComputedTotal *prometheus.CounterVec
	// BillLines records the distribution of line counts per computed bill.
	BillLines prometheus.Histogram
	// UnknownSKUDroppedTotal counts basket occurrences dropped for unknown SKUs.
	UnknownSKUDroppedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		BillsComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_computed_total",
			Help:      "Count of bill computations by outcome.",
		}, []string{"result"})
		BillLines = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bill_lines",
			Help:      "Distribution of distinct line counts per computed bill.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		})
		UnknownSKUDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_sku_dropped_total",
			Help:      "Number of basket occurrences dropped because the SKU was not in the catalog.",
		})

		mustRegisterCollector(reg, BillsComputedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				BillsComputedTotal = v
			}
		})
		mustRegisterCollector(reg, BillLines, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				BillLines = v
			}
		})
		mustRegisterCollector(reg, UnknownSKUDroppedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				UnknownSKUDroppedTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, replace func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			replace(are.ExistingCollector)
			return
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
}
