package shared

// Collection names. The loader and the API must agree on these; there is
// no schema enforcement beyond what both sides assume.
const (
	Books    = "books"
	Ratings  = "ratings"
	Tags     = "tags"
	BookTags = "book_tags"
	ToRead   = "to_read"
)
