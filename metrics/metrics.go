// metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// reqDuration is a histogram of HTTP request durations in seconds, labeled
// by route pattern, method, and status code.
var reqDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: []float64{0.001, 0.01, 0.1, 0.3, 1.2},
	},
	[]string{"path", "method", "status"},
)

// helperCalls counts helper invocations made through the preview service.
var helperCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "viewkit_helper_calls_total",
		Help: "Helper invocations by helper name and outcome.",
	},
	[]string{"helper", "outcome"},
)

// Helper outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeNoMatch = "no_match"
	OutcomeInvalid = "invalid"
)

// RegisterDefault registers the Go runtime and process collectors plus the
// viewkit collectors. Calling it more than once is harmless.
func RegisterDefault(logger *zap.Logger) {
	mustRegister(logger, "Go collector", collectors.NewGoCollector())
	mustRegister(logger, "process collector", collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mustRegister(logger, "HTTP request histogram", reqDuration)
	mustRegister(logger, "helper call counter", helperCalls)
}

// mustRegister registers c, ignoring AlreadyRegisteredError. Any other
// failure is fatal (or a panic when no logger is given).
func mustRegister(logger *zap.Logger, name string, c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		if logger != nil {
			logger.Fatal("failed to register "+name, zap.Error(err))
		}
		panic("metrics: failed to register " + name + ": " + err.Error())
	}
}

// ObserveHelper records one helper call.
func ObserveHelper(helper, outcome string) {
	helperCalls.WithLabelValues(helper, outcome).Inc()
}

// maxPathLabelLength bounds the path label.
const maxPathLabelLength = 256

// HTTPMetrics records request duration into http_request_duration_seconds.
// The chi route pattern (e.g. "/api/{helper}") is used instead of the raw
// path to keep label cardinality bounded.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		protoMajor := r.ProtoMajor
		if protoMajor < 1 {
			protoMajor = 1
		}
		ww := middleware.NewWrapResponseWriter(w, protoMajor)

		next.ServeHTTP(ww, r)

		statusCode := ww.Status()
		// 0 means the handler never called WriteHeader.
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		if statusCode < 100 || statusCode > 599 {
			statusCode = http.StatusInternalServerError
		}

		reqDuration.WithLabelValues(
			pathLabel(r),
			r.Method,
			strconv.Itoa(statusCode),
		).Observe(time.Since(start).Seconds())
	})
}

func pathLabel(r *http.Request) string {
	path := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			path = pattern
		}
	}
	if len(path) > maxPathLabelLength {
		path = truncateUTF8(path, maxPathLabelLength-3) + "..."
	}
	return path
}

// Handler returns an http.Handler that exposes the Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// truncateUTF8 cuts s to at most maxBytes without splitting a rune.
func truncateUTF8(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
