package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/droverlabs/drover/internal/httputil"
)

// APIKey creates a chi middleware that validates the shared worker secret.
// The key is read from the X-API-Key header, with Authorization: Bearer
// accepted as a fallback. Comparison is constant-time.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get("X-API-Key"); key != "" {
				if !equal(key, secret) {
					httputil.Unauthorized(w, "Invalid API key")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.Unauthorized(w, "X-API-Key header missing")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httputil.Unauthorized(w, "invalid authorization header format")
				return
			}
			if !equal(parts[1], secret) {
				httputil.Unauthorized(w, "Invalid secret key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
