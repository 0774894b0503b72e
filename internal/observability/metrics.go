package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the Prometheus instruments for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ImportsTotal       *prometheus.CounterVec
	ModelsRendered     prometheus.Counter
	MissingRuleText    prometheus.Counter
	SharedListsSaved   *prometheus.CounterVec
	SharedListsFetched *prometheus.CounterVec
}

// InitMetrics creates and registers all Prometheus metric instruments.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oprtts_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path_pattern", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oprtts_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path_pattern"}),
		ImportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oprtts_army_list_imports_total",
			Help: "Total number of army list imports.",
		}, []string{"game_system", "status"}),
		ModelsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oprtts_models_rendered_total",
			Help: "Total number of model definitions rendered.",
		}),
		MissingRuleText: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oprtts_missing_rule_text_total",
			Help: "Rules rendered with the missing description placeholder.",
		}),
		SharedListsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oprtts_shared_lists_saved_total",
			Help: "Total number of shareable outputs saved.",
		}, []string{"status"}),
		SharedListsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oprtts_shared_lists_fetched_total",
			Help: "Total number of shared list lookups.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ImportsTotal,
		m.ModelsRendered,
		m.MissingRuleText,
		m.SharedListsSaved,
		m.SharedListsFetched,
	)

	return m
}

// NewNopMetrics returns instruments registered on a throwaway registry.
func NewNopMetrics() *Metrics {
	return InitMetrics(prometheus.NewRegistry())
}

// StatusLabel maps an error onto the status label.
func StatusLabel(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// RecordHTTPRequest records a finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, pathPattern string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, pathPattern, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, pathPattern).Observe(duration.Seconds())
}

// MetricsMiddleware records request metrics using chi's route pattern so
// list ids do not become label values.
func (m *Metrics) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		m.RecordHTTPRequest(r.Method, routePattern(r), sw.status, time.Since(start))
	})
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	pattern := strings.TrimSuffix(rctx.RoutePattern(), "/*")
	if pattern == "" {
		return r.URL.Path
	}
	return pattern
}

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}
