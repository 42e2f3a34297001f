// middleware/sizelimit.go
package middleware

import (
	"net/http"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
)

// LimitBodySize caps request bodies at maxBytes; maxBytes <= 0 leaves them
// alone. A request whose Content-Length already exceeds the cap is answered
// with a 413 JSON error before any handler runs. Chunked or understated
// bodies are cut off by http.MaxBytesReader, so the handler sees a read error
// (httputil.BindJSON reports it as "request body too large").
func LimitBodySize(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				verrors.Write(w, verrors.PayloadTooLarge(maxBytes))
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
