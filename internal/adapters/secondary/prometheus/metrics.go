package prometheus

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ports "housing-price-service/internal/core/ports/output"
)

// Registry bundles the collectors this service exposes on /metrics.
type Registry struct {
	reg *prom.Registry

	predRequests prom.Counter
	predFailures prom.Counter
	predLatency  prom.Histogram
	httpRequests *prom.CounterVec
	httpLatency  *prom.HistogramVec
}

// NewRegistry creates a private registry with the prediction and HTTP
// collectors plus the Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		predRequests: prom.NewCounter(prom.CounterOpts{
			Name: "pred_requests_total",
			Help: "Total prediction requests",
		}),
		predFailures: prom.NewCounter(prom.CounterOpts{
			Name: "pred_failures_total",
			Help: "Prediction requests rejected by the feature adapter or the model",
		}),
		predLatency: prom.NewHistogram(prom.HistogramOpts{
			Name:    "pred_latency_seconds",
			Help:    "Prediction latency in seconds",
			Buckets: prom.DefBuckets,
		}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.reg = prom.NewRegistry()
	r.reg.MustRegister(
		r.predRequests,
		r.predFailures,
		r.predLatency,
		r.httpRequests,
		r.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

var _ ports.MetricsRecorder = (*Registry)(nil)

func (r *Registry) ObservePrediction(latency time.Duration, err error) {
	r.predRequests.Inc()
	r.predLatency.Observe(latency.Seconds())
	if err != nil {
		r.predFailures.Inc()
	}
}

func (r *Registry) ObserveHTTP(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prom.Gatherer {
	return r.reg
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
