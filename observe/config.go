// Package observe decorates optics with structured logging and Prometheus
// counters for reads, writes and reverse construction.
//
// A decorated optic behaves exactly like the one it wraps and keeps its kind.
// Failed reads and writes skipped because the focus was absent are logged at
// debug level.
package observe

import (
	"errors"
	"log/slog"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
)

var metricName = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// Config configures an Observer.
type Config struct {
	// Name labels every record of optics decorated without an explicit name.
	Name string

	// Namespace prefixes the metric names.
	Namespace string

	// Logger receives debug records for failures. Nil discards them.
	Logger *slog.Logger

	// Registerer receives the counters. Nil uses a private registry.
	Registerer prometheus.Registerer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:      "optic",
		Namespace: "optics",
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		c.Name = "optic"
	}
	if c.Namespace == "" {
		c.Namespace = "optics"
	}
	if !metricName.MatchString(c.Namespace) {
		return errors.New("observe: namespace must be a valid metric name prefix")
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Registerer == nil {
		c.Registerer = prometheus.NewRegistry()
	}
	return nil
}
