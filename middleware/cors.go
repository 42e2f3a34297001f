// middleware/cors.go
package middleware

import (
	"net/http"

	"github.com/dalemusser/viewkit/config"
	"github.com/go-chi/cors"
)

// CORSFromConfig returns CORS middleware for the /api routes, or an identity
// middleware when CORS is disabled, so it is always safe to Use.
func CORSFromConfig(cfg *config.CoreConfig) func(next http.Handler) http.Handler {
	if cfg == nil || !cfg.CORS.EnableCORS {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.CORSAllowedOrigins,
		AllowedMethods: cfg.CORS.CORSAllowedMethods,
		AllowedHeaders: cfg.CORS.CORSAllowedHeaders,
		MaxAge:         cfg.CORS.CORSMaxAge,
	})
}
