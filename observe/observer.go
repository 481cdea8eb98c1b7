package observe

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer records the activity of decorated optics.
type Observer struct {
	name    string
	logger  *slog.Logger
	metrics *Metrics
}

// New creates an Observer and registers its counters.
func New(config Config) (*Observer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Observer{
		name:    config.Name,
		logger:  config.Logger,
		metrics: NewMetrics(config.Namespace, config.Registerer),
	}, nil
}

// Named returns an Observer that shares o's logger and counters but labels
// its records with name.
func (o *Observer) Named(name string) *Observer {
	named := *o
	named.name = name
	return &named
}

// Name returns the optic label.
func (o *Observer) Name() string {
	return o.name
}

// Metrics returns the counters.
func (o *Observer) Metrics() *Metrics {
	return o.metrics
}

func (o *Observer) record(counter *prometheus.CounterVec, op, result string, err error) {
	counter.WithLabelValues(o.name, result).Inc()
	if err != nil {
		o.logger.Debug("optic "+op+" "+result,
			slog.String("optic", o.name),
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
}

func (o *Observer) read(err error) {
	if err != nil {
		o.record(o.metrics.ReadsTotal, "read", ResultFailed, err)
		return
	}
	o.record(o.metrics.ReadsTotal, "read", ResultOK, nil)
}

func (o *Observer) wrote() {
	o.record(o.metrics.WritesTotal, "write", ResultOK, nil)
}

func (o *Observer) skipped(err error) {
	o.record(o.metrics.WritesTotal, "write", ResultSkipped, err)
}

func (o *Observer) reversed(err error) {
	if err != nil {
		o.record(o.metrics.ReverseTotal, "reverse", ResultFailed, err)
		return
	}
	o.record(o.metrics.ReverseTotal, "reverse", ResultOK, nil)
}
