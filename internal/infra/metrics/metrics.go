// Package metrics exposes Prometheus instrumentation for dispatches and
// backend calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"notifyconsole/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notifyconsole"

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry         *prometheus.Registry
	dispatchOutcomes *prometheus.CounterVec
	queuedMessages   prometheus.Counter
	backendRequests  *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		dispatchOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_outcomes_total",
			Help:      "Dispatch attempts by audience, messenger and normalized outcome.",
		}, []string{"audience", "messenger", "status", "code"}),
		queuedMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_queued_messages_total",
			Help:      "Messages the backend reported as queued by bulk dispatches.",
		}),
		backendRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the notification backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.dispatchOutcomes,
		m.queuedMessages,
		m.backendRequests,
	)

	return m
}

// RecordOutcome implements service.DispatchRecorder.
func (m *Metrics) RecordOutcome(kind entity.AudienceKind, messenger entity.Channel, outcome entity.DeliveryOutcome) {
	m.dispatchOutcomes.WithLabelValues(string(kind), messenger.String(), string(outcome.Status), outcome.Code).Inc()
	if outcome.Accepted() && outcome.QueuedCount != nil {
		m.queuedMessages.Add(float64(*outcome.QueuedCount))
	}
}

// ObserveBackend records one backend round trip. status 0 means no response.
func (m *Metrics) ObserveBackend(method, route string, status int, elapsed time.Duration) {
	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.backendRequests.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
