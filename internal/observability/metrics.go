package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	planComputedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "optical",
		Subsystem: "plan",
		Name:      "computed_total",
		Help:      "Number of daily plans computed, by person.",
	}, []string{"person"})

	proteinWarningCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "optical",
		Subsystem: "plan",
		Name:      "protein_warning_total",
		Help:      "Plans computed with total protein below the weight-based goal.",
	}, []string{"person"})

	catalogMissCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "optical",
		Subsystem: "batch",
		Name:      "catalog_miss_total",
		Help:      "Aggregator lookups that matched no catalog row. A steady increase means the slot candidate names drifted from the catalog.",
	})
)

func init() {
	prometheus.MustRegister(planComputedCounter, proteinWarningCounter, catalogMissCounter)
}

// RecordPlanComputed counts one plan computation.
func RecordPlanComputed(person string, proteinWarning bool) {
	planComputedCounter.WithLabelValues(person).Inc()
	if proteinWarning {
		proteinWarningCounter.WithLabelValues(person).Inc()
	}
}

// RecordCatalogMisses counts aggregator lookups that found no row.
func RecordCatalogMisses(n int) {
	if n > 0 {
		catalogMissCounter.Add(float64(n))
	}
}
