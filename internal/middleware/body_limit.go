package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes is plenty for a logged set or an exercise definition.
const DefaultMaxBodyBytes int64 = 64 * 1024

// LimitAndDrainBody caps the request body size, and drains and closes it once the handler is done,
// so the connection can be reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
