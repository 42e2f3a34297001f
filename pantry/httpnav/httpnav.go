// httpnav/httpnav.go
package httpnav

import (
	"net/http"
	"strings"
)

// CurrentPath returns the request path with its raw query, if any.
func CurrentPath(r *http.Request) string {
	p := r.URL.Path
	if q := r.URL.RawQuery; q != "" {
		p += "?" + q
	}
	return p
}

// FullURL returns scheme://host/path?query for r. The scheme honors TLS and
// X-Forwarded-Proto.
func FullURL(r *http.Request) string {
	return scheme(r) + "://" + r.Host + CurrentPath(r)
}

func scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if xf := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); xf != "" {
		// First hop wins when proxies append.
		if i := strings.IndexByte(xf, ','); i >= 0 {
			xf = xf[:i]
		}
		return strings.ToLower(strings.TrimSpace(xf))
	}
	return "http"
}
