package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/viewkit/config"
)

func TestLimitBodySize(t *testing.T) {
	var readErr error
	h := LimitBodySize(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	// Unknown length, as with chunked uploads.
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456"))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)
	if readErr == nil {
		t.Error("expected error reading oversized body")
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1234")))
	if readErr != nil {
		t.Errorf("body within limit failed: %v", readErr)
	}
}

func TestLimitBodySizeRejectsDeclaredLength(t *testing.T) {
	called := false
	h := LimitBodySize(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456")))
	if called {
		t.Error("handler ran for an oversized Content-Length")
	}
	if rec.Code != http.StatusRequestEntityTooLarge || !strings.Contains(rec.Body.String(), `"payload_too_large"`) {
		t.Errorf("response = %d %s", rec.Code, rec.Body.String())
	}
}

func TestLimitBodySizeDisabled(t *testing.T) {
	var n int
	h := LimitBodySize(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		n = len(b)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456")))
	if n != 6 {
		t.Errorf("read %d bytes, want 6", n)
	}
}

func TestCORSFromConfig(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	cfg := &config.CoreConfig{}
	cfg.CORS.EnableCORS = true
	cfg.CORS.CORSAllowedOrigins = []string{"https://a.example"}
	cfg.CORS.CORSAllowedMethods = []string{"GET"}

	req := httptest.NewRequest(http.MethodGet, "/api/mask", nil)
	req.Header.Set("Origin", "https://a.example")
	rec := httptest.NewRecorder()
	CORSFromConfig(cfg)(ok).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://a.example" {
		t.Errorf("Allow-Origin = %q", got)
	}

	rec = httptest.NewRecorder()
	CORSFromConfig(nil)(ok).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disabled CORS set Allow-Origin = %q", got)
	}
}

func TestNotFoundHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Errorf("404 = %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	MethodNotAllowedHandler(nil)(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("405 = %d", rec.Code)
	}
}
