// logging/requestmw.go
package logging

import (
	"net/http"
	"time"

	"github.com/dalemusser/viewkit/pantry/httpnav"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger returns a middleware that logs one line per request with
// method, path, route name, status, bytes, latency and request ID.
func RequestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, protoMajor(r))

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", httpnav.FromRequest(r).RouteName()),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("remote_ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// protoMajor defaults to HTTP/1.x when ProtoMajor is unset (e.g. in tests).
func protoMajor(r *http.Request) int {
	if r.ProtoMajor < 1 {
		return 1
	}
	return r.ProtoMajor
}
