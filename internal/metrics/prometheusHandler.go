package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rate_limited_requests_total",
	Help: "Requests rejected by the rate limiter",
})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

var backendErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "backend_errors_total",
	Help: "Failed calls to external backends labelled by operation and error kind",
}, []string{"service", "kind"})

// HttpStatusRecorder captures the status written by the handler.
type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush lets streaming handlers (mcp event streams) push through the recorder.
func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func IncrementBackendErrors(label string, kind string) {
	backendErrorsTotal.WithLabelValues(label, kind).Inc()
}

func IncrementRateLimited() {
	rateLimitedTotal.Inc()
}
