// Package preview serves the viewkit helpers over HTTP: a demo page that
// renders them through html/template and a small JSON API per helper.
package preview

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/dalemusser/viewkit/config"
	"github.com/dalemusser/viewkit/metrics"
	"github.com/dalemusser/viewkit/middleware"
	"github.com/dalemusser/viewkit/pantry/clock"
	"github.com/dalemusser/viewkit/pantry/health"
	"github.com/dalemusser/viewkit/pantry/httpnav"
	"github.com/dalemusser/viewkit/pantry/mask"
	"github.com/dalemusser/viewkit/pantry/money"
	"github.com/dalemusser/viewkit/pantry/templates"
	"github.com/dalemusser/viewkit/pantry/version"
	"github.com/dalemusser/viewkit/router"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.gohtml
var pageFS embed.FS

// Route names used with httpnav.Name.
const (
	RouteHome    = "preview.home"
	RouteDates   = "preview.api.dates"
	RouteMask    = "preview.api.mask"
	RouteMoney   = "preview.api.money"
	RouteCents   = "preview.api.cents"
	RouteTimes   = "preview.api.times"
	RouteIcon    = "preview.api.icon"
	RouteHealth  = "preview.health"
	RouteVersion = "preview.version"
)

// Handler holds the dependencies of the preview routes.
type Handler struct {
	cfg    *config.CoreConfig
	logger *zap.Logger
	page   *template.Template
}

// New parses the embedded page template with templates.Funcs.
func New(cfg *config.CoreConfig, logger *zap.Logger) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = &config.CoreConfig{}
	}
	page, err := template.New("home.gohtml").Funcs(templates.Funcs()).ParseFS(pageFS, "templates/home.gohtml")
	if err != nil {
		return nil, err
	}
	return &Handler{cfg: cfg, logger: logger, page: page}, nil
}

// Routes mounts the page, the /api group (with CORS from config), /health
// and /version.
func (h *Handler) Routes(r chi.Router) {
	r.With(httpnav.Name(RouteHome)).Get("/", h.wrap(h.home))
	r.With(httpnav.Name(RouteHealth)).Method(http.MethodGet, "/health", health.Handler(h.checks(), 0, h.logger))
	r.With(httpnav.Name(RouteVersion)).Method(http.MethodGet, "/version", version.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.CORSFromConfig(h.cfg))
		api.With(httpnav.Name(RouteDates)).Get("/dates", h.wrap(h.dates))
		api.With(httpnav.Name(RouteMask)).Get("/mask", h.wrap(h.mask))
		api.With(httpnav.Name(RouteMoney)).Get("/money", h.wrap(h.money))
		api.With(httpnav.Name(RouteCents)).Get("/cents", h.wrap(h.cents))
		api.With(httpnav.Name(RouteTimes)).Post("/times", h.wrap(h.times))
		api.With(httpnav.Name(RouteIcon)).Get("/icon", h.wrap(h.icon))
	})
}

// BuildHandler assembles the full preview service: the standard router,
// the preview routes and /metrics. It matches app.Hooks.BuildHandler.
func BuildHandler(cfg *config.CoreConfig, logger *zap.Logger) (http.Handler, error) {
	h, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	r := router.New(h.cfg, h.logger)
	h.Routes(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r, nil
}

// checks are the /health probes: the page must render and the helpers must
// agree with their documented examples.
func (h *Handler) checks() map[string]health.Check {
	return map[string]health.Check{
		"templates": func(ctx context.Context) error {
			return h.page.Execute(io.Discard, homeData{Route: httpnav.FromRequest(nil), Samples: homeSamples})
		},
		"helpers": func(ctx context.Context) error {
			if got, err := clock.Sum("06:15", "06:15"); err != nil || got != "12:30" {
				return fmt.Errorf("clock.Sum = %q, %v", got, err)
			}
			if got := mask.Mask("12345678900", mask.CPF); got != "123.456.789-00" {
				return fmt.Errorf("mask.Mask = %q", got)
			}
			if got := money.CentsToDisplay(542100, ""); got != "5.421,00" {
				return fmt.Errorf("money.CentsToDisplay = %q", got)
			}
			return nil
		},
	}
}
