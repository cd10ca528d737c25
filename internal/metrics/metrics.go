// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tipsplit"

// Metrics groups the collectors. Build one per registry with New.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Calculations *prometheus.CounterVec
	FormEvents   *prometheus.CounterVec
}

// SessionCounter reports how many sessions are live.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// New registers the tipsplit collectors, plus Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Tip and split calculations by source (calculate, form).",
		}, []string{"source"}),
		FormEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_events_total",
			Help:      "Form interactions by kind.",
		}, []string{"event"}),
	}

	m.registry.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.Calculations,
		m.FormEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// WatchSessions exports the live session count as a gauge.
func (m *Metrics) WatchSessions(counter SessionCounter) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Form sessions that have not expired.",
	}, func() float64 {
		n, err := counter.Count(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	}))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation counts one calculation.
func (m *Metrics) ObserveCalculation(source string) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(source).Inc()
}

// ObserveFormEvent counts one form interaction.
func (m *Metrics) ObserveFormEvent(event string) {
	if m == nil {
		return
	}
	m.FormEvents.WithLabelValues(event).Inc()
}
