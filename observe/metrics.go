package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Metrics holds the counters shared by every optic of one Observer.
type Metrics struct {
	ReadsTotal   *prometheus.CounterVec
	WritesTotal  *prometheus.CounterVec
	ReverseTotal *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reads_total",
				Help:      "Total number of optic reads",
			},
			[]string{"optic", "result"},
		),
		WritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "writes_total",
				Help:      "Total number of optic writes, skipped when the focus was absent",
			},
			[]string{"optic", "result"},
		),
		ReverseTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reverse_total",
				Help:      "Total number of wholes built from a focus",
			},
			[]string{"optic", "result"},
		),
	}
}
