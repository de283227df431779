package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
)

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.Recovery(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value must not leak to the client")
	}
	if !strings.Contains(rec.Body.String(), `"detail"`) {
		t.Errorf("expected detail error body, got %s", rec.Body.String())
	}
}

func TestRecovery_PassesThroughNormally(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.Recovery(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
}
