package validate

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination parses and validates page/page_size query values. Empty
// values fall back to page=1, page_size=20. Every listing endpoint runs
// this before touching the store.
func Pagination(pageRaw, sizeRaw string) (page, pageSize int, err error) {
	page, pageSize = 1, DefaultPageSize
	if s := strings.TrimSpace(pageRaw); s != "" {
		v, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, 0, errors.New("page must be an integer")
		}
		page = v
	}
	if s := strings.TrimSpace(sizeRaw); s != "" {
		v, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, 0, errors.New("page_size must be an integer")
		}
		pageSize = v
	}
	if page < 1 {
		return 0, 0, errors.New("page must be >= 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return 0, 0, errors.New("page_size must be in [1, 100]")
	}
	return page, pageSize, nil
}

// Offset converts a validated page/page_size pair into a skip count.
// Products past the int64 range clamp to MaxInt64, a window past the end
// of any dataset, so absurd page numbers yield empty pages rather than
// wrapped offsets.
func Offset(page, pageSize int) int64 {
	p, s := int64(page-1), int64(pageSize)
	if s > 0 && p > math.MaxInt64/s {
		return math.MaxInt64
	}
	return p * s
}

// SortKey validates the books sort enum.
func SortKey(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "avg", nil
	}
	switch s {
	case "avg", "ratings_count", "year", "title":
		return s, nil
	}
	return "", errors.New("sort must be one of avg, ratings_count, year, title")
}

// Order validates the sort direction enum. Descending is the default.
func Order(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "desc", nil
	}
	switch s {
	case "asc", "desc":
		return s, nil
	}
	return "", errors.New("order must be asc or desc")
}

// OptionalFloat parses a float query value, nil when absent.
func OptionalFloat(name, raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &v, nil
}

// OptionalInt parses an integer query value, nil when absent.
func OptionalInt(name, raw string) (*int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

// ID parses an integer path parameter. Sign is not checked; a negative
// key simply matches nothing.
func ID(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

// Bool parses query flags like exact=true; empty means false.
func Bool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
