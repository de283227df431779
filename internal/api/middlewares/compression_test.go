package middlewares_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
)

func TestCompression_GzipsWhenAccepted(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[],"page":1,"page_size":20,"total":0}`))
	})

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	mw.Compression(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding: expected gzip, got %q", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("body is not gzip: %v", err)
	}
	defer zr.Close()
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(body) != `{"items":[],"page":1,"page_size":20,"total":0}` {
		t.Errorf("unexpected decompressed body: %s", body)
	}
}

func TestCompression_PassthroughWithoutAcceptEncoding(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.Compression(handler).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("Content-Encoding must be empty without Accept-Encoding: gzip")
	}
	if rec.Body.String() != "plain" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
