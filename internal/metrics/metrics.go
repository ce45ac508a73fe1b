package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

const namespace = "recerqa"

// Metrics holds service collectors registered on a dedicated registry.
type Metrics struct {
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	chatOutcomes        *prometheus.CounterVec
	eventsPublished     *prometheus.CounterVec
}

// NewRegistry creates a registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		chatOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_outcomes_total",
				Help:      "Chat pipeline results by outcome",
			},
			[]string{"outcome"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_events_published_total",
				Help:      "Order outbox events handed to the broker by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveHTTP records a served request.
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// ChatOutcome counts a chat pipeline result.
func (m *Metrics) ChatOutcome(outcome model.ChatOutcome) {
	m.chatOutcomes.WithLabelValues(string(outcome)).Inc()
}

// EventPublished counts an outbox publish attempt.
func (m *Metrics) EventPublished(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(result).Inc()
}
