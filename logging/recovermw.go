// logging/recovermw.go
package logging

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recoverer returns a middleware that recovers from panics, logs them with a
// stack trace, and answers 500 if nothing has been written yet.
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, protoMajor(r))

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					zap.Any("panic_value", rec),
					zap.ByteString("stacktrace", debug.Stack()),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)

				if ww.Status() == 0 {
					http.Error(w, "internal server error", http.StatusInternalServerError)
				} else {
					logger.Warn("panic occurred after headers written; response may be incomplete",
						zap.Int("status_already_sent", ww.Status()),
						zap.String("path", r.URL.Path))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
