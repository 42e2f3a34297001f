package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]Check
		status int
		body   string
	}{
		{"no checks", nil, http.StatusOK, `{"status":"ok"}`},
		{"passing", map[string]Check{"a": func(context.Context) error { return nil }, "b": nil}, http.StatusOK, `"a":"ok"`},
		{"failing", map[string]Check{"a": func(context.Context) error { return errors.New("down") }}, http.StatusServiceUnavailable, `"a":"error: down"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handler(tt.checks, time.Second, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("body = %s, want containing %s", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestRunTimesOutSlowChecks(t *testing.T) {
	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	resp, ok := Run(context.Background(), map[string]Check{"slow": slow}, 10*time.Millisecond)
	if ok {
		t.Fatal("slow check should fail")
	}
	if resp.Checks["slow"] != "error: "+context.DeadlineExceeded.Error() {
		t.Errorf("slow = %q", resp.Checks["slow"])
	}
}
