package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the person module.
// Counts forwarded operations and lookups that found nothing.
type Metrics struct {
	Operations   *prometheus.CounterVec
	LookupMisses prometheus.Counter
	Stored       prometheus.Gauge
}

// New creates the person module metrics and registers them with reg.
// Pass a fresh prometheus.NewRegistry() per process or test so repeated
// construction does not collide on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_operations_total",
			Help: "Total number of person store operations by name",
		}, []string{"operation"}),
		LookupMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "people_lookup_misses_total",
			Help: "Total number of lookups by national ID that found no person",
		}),
		Stored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "people_stored",
			Help: "Number of people currently held by the store",
		}),
	}
}

// IncrementOperation records one call of the named operation.
func (m *Metrics) IncrementOperation(operation string) {
	m.Operations.WithLabelValues(operation).Inc()
}

// IncrementLookupMiss records a lookup by national ID that found nobody.
func (m *Metrics) IncrementLookupMiss() {
	m.LookupMisses.Inc()
}

// SetStored records the current collection size.
func (m *Metrics) SetStored(n int) {
	m.Stored.Set(float64(n))
}
