package middlewares

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// statusRecorder captures the status code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLog emits one structured record per request: route, query
// params, status, latency in milliseconds, client address and timestamp.
func RequestLog(logger zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t0 := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			params := zerolog.Dict()
			for k, vs := range r.URL.Query() {
				if len(vs) > 0 {
					params.Str(k, vs[0])
				}
			}
			logger.Info().
				Str("route", r.URL.Path).
				Dict("params", params).
				Int("status", rec.status).
				Int64("latency_ms", time.Since(t0).Milliseconds()).
				Str("client_ip", ClientIP(r)).
				Str("request_id", GetRequestID(r)).
				Int64("ts", time.Now().Unix()).
				Msg("request")
		})
	}
}
