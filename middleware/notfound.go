// middleware/notfound.go
package middleware

import (
	"net/http"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
	"go.uber.org/zap"
)

// NotFoundHandler logs a 404 and writes the JSON error envelope.
// Pass it to chi.Router.NotFound.
func NotFoundHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if logger != nil {
			logger.Info("not_found",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
		}
		verrors.Write(w, verrors.NotFound("the requested resource was not found"))
	}
}

// MethodNotAllowedHandler logs a 405 and writes the JSON error envelope.
// Pass it to chi.Router.MethodNotAllowed.
func MethodNotAllowedHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if logger != nil {
			logger.Info("method_not_allowed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
		}
		verrors.Write(w, verrors.MethodNotAllowed("the requested HTTP method is not allowed for this resource"))
	}
}
