package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

// BodySizeLimit caps request bodies. The only body-carrying endpoint is
// the rating upsert, so the default is small; MAX_BODY_SIZE overrides.
func BodySizeLimit(next http.Handler) http.Handler {
	limit := int64(1 << 20) // 1MB

	if env := os.Getenv("MAX_BODY_SIZE"); env != "" {
		if parsed, err := strconv.ParseInt(env, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
