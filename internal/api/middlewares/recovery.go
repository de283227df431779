package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
)

// Recovery turns handler panics into plain 500s without leaking
// internals to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", GetRequestID(r)).
					Str("route", r.URL.Path).
					Str("method", r.Method).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("handler panic")

				httpx.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
