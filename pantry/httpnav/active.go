// httpnav/active.go
package httpnav

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DefaultActiveClass is returned by the Active* helpers on a match.
const DefaultActiveClass = "active"

// RouteContext is what the navigation helpers need to know about the
// request being rendered.
type RouteContext interface {
	// RouteName identifies the matched route, e.g. "users.edit".
	// Empty when the route has no name.
	RouteName() string
	// FullURL is the absolute URL of the request, query included.
	FullURL() string
}

// IsCurrentRoute reports whether the current route name contains any of
// names. Matching is by substring, so "users" matches "users.edit".
// A nil context, an unnamed route or an empty name never matches.
func IsCurrentRoute(rc RouteContext, names ...string) bool {
	if rc == nil {
		return false
	}
	current := rc.RouteName()
	if current == "" {
		return false
	}
	for _, n := range names {
		if n != "" && strings.Contains(current, n) {
			return true
		}
	}
	return false
}

// ActiveByRoute returns class (or "active" when class is empty) if any of
// names matches the current route, and "" otherwise.
func ActiveByRoute(rc RouteContext, class string, names ...string) string {
	if !IsCurrentRoute(rc, names...) {
		return ""
	}
	return activeClass(class)
}

// ActiveByURL returns class (or "active") when url equals the full request URL.
func ActiveByURL(rc RouteContext, url, class string) string {
	if rc == nil || rc.FullURL() != url {
		return ""
	}
	return activeClass(class)
}

func activeClass(class string) string {
	if class == "" {
		return DefaultActiveClass
	}
	return class
}

type routeNameKey struct{}

// routeName is a per-request slot so middleware wrapping the router can read
// a name set further in by Name.
type routeName struct {
	name string
}

// Track installs an empty route-name slot on each request. Mount it before
// any middleware that wants to see names set by Name (request logging,
// metrics); without it names are only visible to the route's own handler.
func Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), routeNameKey{}, &routeName{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Name returns middleware that tags requests with a route name. Use it with
// chi's With so the name applies to one route:
//
//	r.With(httpnav.Name("users.edit")).Get("/users/{id}/edit", h)
func Name(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithRouteName(r.Context(), name)))
		})
	}
}

// WithRouteName stores a route name in ctx. When ctx already carries a slot
// from Track, the slot is filled in place.
func WithRouteName(ctx context.Context, name string) context.Context {
	if slot, ok := ctx.Value(routeNameKey{}).(*routeName); ok {
		slot.name = name
		return ctx
	}
	return context.WithValue(ctx, routeNameKey{}, &routeName{name: name})
}

// RouteNameFrom returns the name stored by Name or WithRouteName.
func RouteNameFrom(ctx context.Context) string {
	if slot, ok := ctx.Value(routeNameKey{}).(*routeName); ok {
		return slot.name
	}
	return ""
}

// Request is a RouteContext backed by an *http.Request.
type Request struct {
	r *http.Request
}

// FromRequest adapts r. The route name comes from Name when set and falls
// back to the chi route pattern (e.g. "/users/{id}") otherwise.
func FromRequest(r *http.Request) Request {
	return Request{r: r}
}

// RouteName implements RouteContext.
func (q Request) RouteName() string {
	if q.r == nil {
		return ""
	}
	if name := RouteNameFrom(q.r.Context()); name != "" {
		return name
	}
	if rctx := chi.RouteContext(q.r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// FullURL implements RouteContext.
func (q Request) FullURL() string {
	if q.r == nil {
		return ""
	}
	return FullURL(q.r)
}
