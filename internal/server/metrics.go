package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation exposed by the HTTP server.
// Each Metrics owns its own registry rather than registering into the
// global prometheus.DefaultRegisterer, so multiple instances (e.g. in
// tests) never collide on metric names.
type Metrics struct {
	registry       *prometheus.Registry
	handler        http.Handler
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
}

// NewMetrics builds a Metrics with a fresh registry, Go/process runtime
// collectors, and the active-requests/requests-total instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bignumctl_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bignumctl_requests_total",
			Help: "Total number of HTTP requests served, labeled by path and status.",
		}, []string{"path", "status"}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks one more request as in flight.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks one fewer request as in flight.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// observe records a completed request against the requests-total counter.
func (m *Metrics) observe(path, status string) { m.requestsTotal.WithLabelValues(path, status).Inc() }

// WritePrometheus renders the registry's current state in the Prometheus
// text exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
