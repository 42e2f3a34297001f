// health/health.go
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/viewkit/httputil"
	"go.uber.org/zap"
)

// Check is a single probe. It returns nil when healthy.
type Check func(ctx context.Context) error

// Response is the JSON body written by Handler.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// DefaultTimeout bounds each check when Handler is given no timeout.
const DefaultTimeout = 2 * time.Second

// Run executes every check concurrently, each under its own timeout, and
// reports whether all of them passed. A nil check counts as passing.
func Run(ctx context.Context, checks map[string]Check, timeout time.Duration) (Response, bool) {
	if len(checks) == 0 {
		return Response{Status: "ok"}, true
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]string, len(checks))
		healthy = true
	)
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check Check) {
			defer wg.Done()
			msg := "ok"
			if check != nil {
				cctx, cancel := context.WithTimeout(ctx, timeout)
				err := check(cctx)
				cancel()
				if err != nil {
					msg = "error: " + err.Error()
				}
			}
			mu.Lock()
			results[name] = msg
			if msg != "ok" {
				healthy = false
			}
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	resp := Response{Status: "ok", Checks: results}
	if !healthy {
		resp.Status = "error"
	}
	return resp, healthy
}

// Handler answers 200 with {"status":"ok"} when every check passes and 503
// with the per-check results otherwise.
func Handler(checks map[string]Check, timeout time.Duration, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := Run(r.Context(), checks, timeout)
		if !ok {
			for name, msg := range resp.Checks {
				if msg != "ok" {
					logger.Warn("health check failed", zap.String("check", name), zap.String("result", msg))
				}
			}
			httputil.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, resp)
	})
}
