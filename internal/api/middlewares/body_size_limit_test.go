package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
)

func TestBodySizeLimit_RejectsOversizedPost(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "16")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/ratings", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}

func TestBodySizeLimit_AllowsSmallPost(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "1024")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/ratings", strings.NewReader(`{"user_id":1,"book_id":2,"rating":5}`))
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_IgnoresGet(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "1")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
