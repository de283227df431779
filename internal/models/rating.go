package models

// Rating is the one entity the API mutates. At most one document exists
// per (user_id, book_id); the upsert path enforces that.
type Rating struct {
	UserID int64 `bson:"user_id" json:"user_id"`
	BookID int64 `bson:"book_id" json:"book_id"`
	Rating int64 `bson:"rating" json:"rating"`
}

// RatingSummary is the derived per-book aggregate: histogram buckets 1..5
// (missing buckets are zero), total count and the 3-decimal average.
type RatingSummary struct {
	Avg       float64       `json:"avg"`
	Count     int64         `json:"count"`
	Histogram map[int]int64 `json:"histogram"`
}
