package models

// Book is a catalog entry loaded from the goodbooks snapshot.
// Books are never mutated by the API.
type Book struct {
	BookID                  int64   `bson:"book_id" json:"book_id"`
	GoodreadsBookID         int64   `bson:"goodreads_book_id" json:"goodreads_book_id"`
	Title                   string  `bson:"title" json:"title"`
	Authors                 string  `bson:"authors" json:"authors"`
	OriginalPublicationYear int64   `bson:"original_publication_year" json:"original_publication_year"`
	AverageRating           float64 `bson:"average_rating" json:"average_rating"`
	RatingsCount            int64   `bson:"ratings_count" json:"ratings_count"`
	ImageURL                string  `bson:"image_url" json:"image_url"`
	SmallImageURL           string  `bson:"small_image_url" json:"small_image_url"`
}
