package models

// Paginated is the envelope every listing endpoint returns. Total counts
// all matching documents, independent of the page window.
type Paginated struct {
	Items    any   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
