// Package metrics exposes validation counters in the prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Amr-9/GrsValidator/pkg/batch"
)

// Namespace prefixes every metric name.
const Namespace = "grsvalidator"

// Values of the source label.
const (
	SourceHTTP  = "http"
	SourceBatch = "batch"
)

// Metrics holds the validation counters.
type Metrics struct {
	Validations   *prometheus.CounterVec
	BatchDuration prometheus.Histogram
}

// NewMetrics creates a new metrics instance.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Addresses validated, by outcome.",
		}, []string{"source", "result", "network", "type"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Time taken to validate a batch of addresses.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

// Collectors returns all prometheus metrics as collectors for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{
		m.Validations,
		m.BatchDuration,
	}
}

// NewRegistry returns a registry holding m and the process and Go runtime
// collectors.
func (m *Metrics) NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Collectors()...)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics of reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Observe counts one batch result.
func (m *Metrics) Observe(source string, res batch.Result) {
	if m == nil {
		return
	}

	result, network, addrType := "invalid", "", ""
	if res.Valid {
		result = "valid"
	}
	if c := res.Classification; c != nil {
		network, addrType = string(c.Network), string(c.Type)
	}
	m.Validations.WithLabelValues(source, result, network, addrType).Inc()
}

// Observer returns a batch.Observer counting results under source.
func (m *Metrics) Observer(source string) batch.Observer {
	return func(res batch.Result) {
		m.Observe(source, res)
	}
}

// ObserveBatch records how long a batch took.
func (m *Metrics) ObserveBatch(d time.Duration) {
	if m == nil {
		return
	}
	m.BatchDuration.Observe(d.Seconds())
}

// WriteTextfile writes the counters of m to path in the text exposition
// format, for the node_exporter textfile collector. Runtime collectors are
// left out since the process is about to exit.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(m.Validations); err != nil {
		return err
	}
	if err := reg.Register(m.BatchDuration); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
