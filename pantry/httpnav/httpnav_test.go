package httpnav

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeRoute struct {
	name string
	url  string
}

func (f fakeRoute) RouteName() string { return f.name }
func (f fakeRoute) FullURL() string   { return f.url }

func TestIsCurrentRoute(t *testing.T) {
	rc := fakeRoute{name: "test.route", url: "http://localhost/test"}

	tests := []struct {
		name  string
		rc    RouteContext
		names []string
		want  bool
	}{
		{"no match", rc, []string{"any"}, false},
		{"exact", rc, []string{"test.route"}, true},
		{"substring", rc, []string{"test"}, true},
		{"any of list", rc, []string{"any", "test.route"}, true},
		{"empty list", rc, nil, false},
		{"empty name ignored", rc, []string{""}, false},
		{"nil context", nil, []string{"test"}, false},
		{"unnamed route", fakeRoute{}, []string{"test"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCurrentRoute(tt.rc, tt.names...); got != tt.want {
				t.Errorf("IsCurrentRoute(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}

func TestActiveHelpers(t *testing.T) {
	rc := fakeRoute{name: "test.route", url: "http://localhost/test"}

	if got := ActiveByRoute(rc, "", "any"); got != "" {
		t.Errorf("ActiveByRoute(any) = %q, want empty", got)
	}
	if got := ActiveByRoute(rc, "", "test.route"); got != "active" {
		t.Errorf("ActiveByRoute(test.route) = %q, want active", got)
	}
	if got := ActiveByRoute(rc, "other_class", "test.route"); got != "other_class" {
		t.Errorf("ActiveByRoute with class = %q", got)
	}

	if got := ActiveByURL(rc, "any", ""); got != "" {
		t.Errorf("ActiveByURL(any) = %q, want empty", got)
	}
	if got := ActiveByURL(rc, "http://localhost/test", ""); got != "active" {
		t.Errorf("ActiveByURL(match) = %q, want active", got)
	}
	if got := ActiveByURL(rc, "http://localhost/test", "other_class"); got != "other_class" {
		t.Errorf("ActiveByURL with class = %q", got)
	}
	if got := ActiveByURL(nil, "http://localhost/test", ""); got != "" {
		t.Errorf("ActiveByURL(nil) = %q", got)
	}
}

func TestFromRequestWithChi(t *testing.T) {
	var gotName, gotURL string
	capture := func(w http.ResponseWriter, r *http.Request) {
		rc := FromRequest(r)
		gotName = rc.RouteName()
		gotURL = rc.FullURL()
	}

	r := chi.NewRouter()
	r.With(Name("test.route")).Get("/test", capture)
	r.Get("/users/{id}", capture)

	req := httptest.NewRequest(http.MethodGet, "http://localhost/test?tab=1", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if gotName != "test.route" {
		t.Errorf("RouteName = %q, want test.route", gotName)
	}
	if gotURL != "http://localhost/test?tab=1" {
		t.Errorf("FullURL = %q", gotURL)
	}

	req = httptest.NewRequest(http.MethodGet, "http://localhost/users/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if gotName != "/users/{id}" {
		t.Errorf("RouteName fallback = %q, want chi pattern", gotName)
	}
}

func TestFullURLScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/a", nil)
	req.Header.Set("X-Forwarded-Proto", "HTTPS, http")
	if got := FullURL(req); got != "https://example.com/a" {
		t.Errorf("FullURL forwarded = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com/b", nil)
	req.TLS = &tls.ConnectionState{}
	if got := FullURL(req); got != "https://example.com/b" {
		t.Errorf("FullURL tls = %q", got)
	}

	if got := CurrentPath(httptest.NewRequest(http.MethodGet, "/x?y=1", nil)); got != "/x?y=1" {
		t.Errorf("CurrentPath = %q", got)
	}
}

func TestTrackExposesNameToOuterMiddleware(t *testing.T) {
	var seen string
	outer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			seen = RouteNameFrom(r.Context())
		})
	}

	r := chi.NewRouter()
	r.Use(Track, outer)
	r.With(Name("reports.index")).Get("/reports", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports", nil))
	if seen != "reports.index" {
		t.Errorf("outer middleware saw %q, want reports.index", seen)
	}
}
