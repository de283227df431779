package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
)

// Gate decides whether a request may reach the handler behind it.
// Swapping implementations (static key, per-user keys) does not touch
// the handlers.
type Gate func(r *http.Request) bool

// StaticKeyGate admits requests whose x-api-key header equals the
// configured shared secret. The comparison is constant-time.
func StaticKeyGate(key string) Gate {
	return func(r *http.Request) bool {
		got := r.Header.Get("x-api-key")
		return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1
	}
}

// RequireKey rejects with 401 unless the gate admits the request.
func RequireKey(gate Gate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate(r) {
				httpx.Unauthorized(w, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
