package validate_test

import (
	"math"
	"testing"

	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

func TestPagination_Defaults(t *testing.T) {
	page, size, err := validate.Pagination("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || size != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", page, size)
	}
}

func TestPagination_Valid(t *testing.T) {
	page, size, err := validate.Pagination("3", "50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || size != 50 {
		t.Errorf("expected 3/50, got %d/%d", page, size)
	}
	if off := validate.Offset(page, size); off != 100 {
		t.Errorf("expected offset 100, got %d", off)
	}
}

func TestOffset_ClampsOnOverflow(t *testing.T) {
	off := validate.Offset(184467440737095520, 100)
	if off != math.MaxInt64 {
		t.Errorf("expected MaxInt64 clamp, got %d", off)
	}
	if off < 0 {
		t.Error("offset must never wrap negative")
	}
}

func TestPagination_Rejects(t *testing.T) {
	cases := []struct {
		name       string
		page, size string
	}{
		{"zero page", "0", "20"},
		{"negative page", "-1", "20"},
		{"zero size", "1", "0"},
		{"oversized", "1", "101"},
		{"non-integer page", "abc", "20"},
		{"non-integer size", "1", "x"},
		{"float page", "1.5", "20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := validate.Pagination(tc.page, tc.size); err == nil {
				t.Errorf("expected error for page=%q page_size=%q", tc.page, tc.size)
			}
		})
	}
}

func TestPagination_Bounds(t *testing.T) {
	// boundary values are valid
	for _, size := range []string{"1", "100"} {
		if _, _, err := validate.Pagination("1", size); err != nil {
			t.Errorf("page_size=%s should be valid: %v", size, err)
		}
	}
}

func TestSortKey(t *testing.T) {
	for _, s := range []string{"avg", "ratings_count", "year", "title"} {
		got, err := validate.SortKey(s)
		if err != nil || got != s {
			t.Errorf("SortKey(%q) = %q, %v", s, got, err)
		}
	}
	if got, err := validate.SortKey(""); err != nil || got != "avg" {
		t.Errorf("empty sort should default to avg, got %q, %v", got, err)
	}
	if _, err := validate.SortKey("popularity"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestOrder(t *testing.T) {
	if got, err := validate.Order(""); err != nil || got != "desc" {
		t.Errorf("empty order should default to desc, got %q, %v", got, err)
	}
	if _, err := validate.Order("up"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestOptionalFloat(t *testing.T) {
	v, err := validate.OptionalFloat("min_avg", "4.2")
	if err != nil || v == nil || *v != 4.2 {
		t.Fatalf("expected 4.2, got %v, %v", v, err)
	}
	if v, err := validate.OptionalFloat("min_avg", ""); err != nil || v != nil {
		t.Errorf("empty should be nil, got %v, %v", v, err)
	}
	if _, err := validate.OptionalFloat("min_avg", "high"); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestID(t *testing.T) {
	if v, err := validate.ID("book_id", "42"); err != nil || v != 42 {
		t.Errorf("expected 42, got %d, %v", v, err)
	}
	if _, err := validate.ID("book_id", "dune"); err == nil {
		t.Error("expected error for non-integer id")
	}
}
