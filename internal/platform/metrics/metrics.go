package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "romannumeral"

// ServiceMetrics holds the daemon's counters. A nil *ServiceMetrics is a
// valid no-op recorder.
type ServiceMetrics struct {
	gatherer    prometheus.Gatherer
	requests    prometheus.Counter
	errors      *prometheus.CounterVec
	rateLimited prometheus.Counter
}

// New registers the counters on reg. A nil reg uses a fresh private registry.
func New(reg *prometheus.Registry) (*ServiceMetrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &ServiceMetrics{
		gatherer: reg,
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "The number of total requests to the conversion endpoint.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "The number of conversion requests that resulted in an error.",
		}, []string{"kind"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "The number of requests rejected by the rate limiter.",
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.errors, m.rateLimited} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *ServiceMetrics) RecordRequest() {
	if m == nil {
		return
	}
	m.requests.Inc()
}

func (m *ServiceMetrics) RecordError(kind string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(kind).Inc()
}

func (m *ServiceMetrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *ServiceMetrics) Requests() prometheus.Counter {
	return m.requests
}

func (m *ServiceMetrics) Errors(kind string) prometheus.Counter {
	return m.errors.WithLabelValues(kind)
}

func (m *ServiceMetrics) RateLimited() prometheus.Counter {
	return m.rateLimited
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ServiceMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
