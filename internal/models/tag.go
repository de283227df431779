package models

// Tag is static reference data.
type Tag struct {
	TagID   int64  `bson:"tag_id" json:"tag_id"`
	TagName string `bson:"tag_name" json:"tag_name"`

	// BookCount is computed per request for GET /tags only.
	BookCount *int64 `bson:"-" json:"book_count,omitempty"`
}

// BookTag associates a book (by goodreads_book_id) with a tag.
type BookTag struct {
	GoodreadsBookID int64 `bson:"goodreads_book_id" json:"goodreads_book_id"`
	TagID           int64 `bson:"tag_id" json:"tag_id"`
	Count           int64 `bson:"count" json:"count"`
}

// ToRead marks a book on a user's reading list. Loader-inserted only.
type ToRead struct {
	UserID int64 `bson:"user_id" json:"user_id"`
	BookID int64 `bson:"book_id" json:"book_id"`
}
