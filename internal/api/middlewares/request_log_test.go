package middlewares_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
)

func TestRequestLog_EmitsOneRecordPerRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest("GET", "/books?q=dune&page=2", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	mw.RequestLog(logger)(handler).ServeHTTP(rec, req)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not a single JSON record: %v", err)
	}

	if record["route"] != "/books" {
		t.Errorf("route: expected /books, got %v", record["route"])
	}
	if record["status"] != float64(http.StatusNotFound) {
		t.Errorf("status: expected 404, got %v", record["status"])
	}
	if record["client_ip"] != "203.0.113.7" {
		t.Errorf("client_ip: expected 203.0.113.7, got %v", record["client_ip"])
	}
	if _, ok := record["latency_ms"]; !ok {
		t.Error("latency_ms missing from record")
	}
	if _, ok := record["ts"]; !ok {
		t.Error("ts missing from record")
	}

	params, ok := record["params"].(map[string]any)
	if !ok {
		t.Fatalf("params: expected object, got %T", record["params"])
	}
	if params["q"] != "dune" || params["page"] != "2" {
		t.Errorf("params: expected q=dune page=2, got %v", params)
	}
}

func TestClientIP_Resolution(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xrip   string
		remote string
		want   string
	}{
		{"forwarded list takes first", "198.51.100.1, 10.0.0.2", "", "10.0.0.9:1234", "198.51.100.1"},
		{"single forwarded", "198.51.100.5", "", "10.0.0.9:1234", "198.51.100.5"},
		{"real ip fallback", "", "198.51.100.9", "10.0.0.9:1234", "198.51.100.9"},
		{"remote addr without port", "", "", "10.0.0.9:1234", "10.0.0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xrip != "" {
				req.Header.Set("X-Real-IP", tt.xrip)
			}
			if got := mw.ClientIP(req); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
