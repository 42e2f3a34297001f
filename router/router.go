// router/router.go
package router

import (
	"github.com/dalemusser/viewkit/config"
	"github.com/dalemusser/viewkit/logging"
	"github.com/dalemusser/viewkit/metrics"
	"github.com/dalemusser/viewkit/middleware"
	"github.com/dalemusser/viewkit/pantry/httpnav"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// New creates a chi.Router pre-wired with the standard middleware stack:
//   - route-name tracking (so the access log sees httpnav.Name)
//   - RequestID
//   - RealIP
//   - Recoverer (panic → 500)
//   - body size limit (MaxRequestBodyBytes)
//   - metrics HTTP middleware
//   - request logging
//   - NotFound / MethodNotAllowed JSON handlers
//
// CORS is left to callers so it can be scoped to the routes that need it.
func New(coreCfg *config.CoreConfig, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(httpnav.Track)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Recoverer(logger))

	r.Use(middleware.LimitBodySize(coreCfg.HTTP.MaxRequestBodyBytes))

	r.Use(metrics.HTTPMetrics)
	r.Use(logging.RequestLogger(logger))

	r.NotFound(middleware.NotFoundHandler(logger))
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler(logger))

	return r
}
