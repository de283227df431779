package books

// ListFilters carries the validated book-listing parameters. Sort and
// Order are already checked against their enums by the handler.
type ListFilters struct {
	Q        string
	Tag      string
	MinAvg   *float64
	YearFrom *int64
	YearTo   *int64
	Sort     string // avg | ratings_count | year | title
	Order    string // asc | desc
	Page     int
	PageSize int
}
