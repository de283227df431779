package books_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/5w1tchy/goodbooks-api/internal/api/handlers/books"
)

// Validation runs before any store access, so a nil database is safe for
// every rejection path.
func TestList_RejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"page zero", "page=0"},
		{"negative page", "page=-3"},
		{"non-integer page", "page=abc"},
		{"float page", "page=1.5"},
		{"page_size zero", "page_size=0"},
		{"page_size over cap", "page_size=101"},
		{"unknown sort", "sort=popularity"},
		{"unknown order", "order=sideways"},
		{"non-numeric min_avg", "min_avg=high"},
		{"non-integer year_from", "year_from=186x"},
		{"non-integer year_to", "year_to=20.5"},
	}

	handler := books.List(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/books?"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["detail"] == "" {
				t.Error("error body missing detail message")
			}
		})
	}
}

func TestGet_RejectsNonIntegerID(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /books/{book_id}", books.Get(nil))

	req := httptest.NewRequest("GET", "/books/not-a-number", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Error("error body missing detail message")
	}
}
