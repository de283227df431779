package handlers

import (
	"net/http"
	"time"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
)

// Metrics reports seconds of uptime since process start.
func Metrics(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]int64{
			"uptime_s": int64(time.Since(start).Seconds()),
		})
	}
}
