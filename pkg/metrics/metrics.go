// Package metrics exposes quote request outcomes as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the metrics for one widget controller. Each collector has
// its own registry so tests can create as many as they like.
type Collector struct {
	registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
	Busy     prometheus.Counter
}

// NewCollector creates a collector under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_requests_total",
				Help:      "Quote requests by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_request_duration_seconds",
				Help:      "Time spent fetching and selecting a quote",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Busy: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_requests_ignored_total",
				Help:      "Quote requests ignored because one was already in flight",
			},
		),
	}
	c.registry.MustRegister(c.Requests, c.Duration, c.Busy)
	return c
}

// ObserveFetch records a finished request.
func (c *Collector) ObserveFetch(outcome string, elapsed time.Duration) {
	c.Requests.WithLabelValues(outcome).Inc()
	c.Duration.Observe(elapsed.Seconds())
}

// ObserveBusy records an ignored request.
func (c *Collector) ObserveBusy() {
	c.Busy.Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
