package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveHelper(t *testing.T) {
	before := testutil.ToFloat64(helperCalls.WithLabelValues("mask", OutcomeOK))
	ObserveHelper("mask", OutcomeOK)
	ObserveHelper("mask", OutcomeOK)
	after := testutil.ToFloat64(helperCalls.WithLabelValues("mask", OutcomeOK))
	if after-before != 2 {
		t.Errorf("counter advanced by %v, want 2", after-before)
	}
}

func TestHTTPMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMetrics)
	r.Get("/api/{helper}", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/mask", nil))

	n := testutil.CollectAndCount(reqDuration, "http_request_duration_seconds")
	if n == 0 {
		t.Fatal("no observations recorded")
	}
	if got := testutil.ToFloat64(helperCalls.WithLabelValues("unused", OutcomeOK)); got != 0 {
		t.Errorf("unexpected counter value %v", got)
	}
}

func TestTruncateUTF8(t *testing.T) {
	s := "/" + strings.Repeat("é", 10)
	got := truncateUTF8(s, 4)
	if got != "/é" {
		t.Errorf("truncateUTF8 = %q, want %q", got, "/é")
	}
	if truncateUTF8("abc", 0) != "" {
		t.Error("truncateUTF8 with 0 should be empty")
	}
}

func TestPathLabelTruncates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("a", 400), nil)
	if got := pathLabel(req); len(got) != maxPathLabelLength {
		t.Errorf("len(pathLabel) = %d, want %d", len(got), maxPathLabelLength)
	}
}
