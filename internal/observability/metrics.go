package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	ModelCalls      *prometheus.CounterVec
	MemoryWrites    *prometheus.CounterVec
	PromptTokens    prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ModelCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_calls_total",
			Help:      "Model provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		MemoryWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memory_writes_total",
			Help:      "Context store writes by backend and outcome.",
		}, []string{"backend", "outcome"}),
		PromptTokens: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prompt_tokens",
			Help:      "Token count of built prompts.",
			Buckets:   []float64{200, 500, 1000, 2000, 4000, 8000, 16000},
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// The helpers below are nil-safe so components can run without metrics
// wired, e.g. in tests.

func (m *Metrics) ObserveModelCall(provider, outcome string) {
	if m == nil {
		return
	}
	m.ModelCalls.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) ObserveMemoryWrite(backend string, stored bool) {
	if m == nil {
		return
	}
	outcome := "stored"
	if !stored {
		outcome = "skipped"
	}
	m.MemoryWrites.WithLabelValues(backend, outcome).Inc()
}

func (m *Metrics) ObservePromptTokens(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.PromptTokens.Observe(float64(n))
}

func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
