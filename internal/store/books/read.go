package books

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
)

// FetchByID returns the book with the given stable key.
// mongo.ErrNoDocuments passes through for the handler's 404.
func FetchByID(ctx context.Context, db *mongo.Database, bookID int64) (models.Book, error) {
	var b models.Book
	err := db.Collection(shared.Books).
		FindOne(ctx, bson.M{"book_id": bookID}).
		Decode(&b)
	return b, err
}

// Fingerprint digests the fields a client would re-fetch for: the key
// plus the two rating-derived values. Identical inputs always produce the
// same token, so it serves as an ETag.
func Fingerprint(b models.Book) string {
	src := fmt.Sprintf("%d-%d-%g", b.BookID, b.RatingsCount, b.AverageRating)
	sum := md5.Sum([]byte(src))
	return hex.EncodeToString(sum[:])
}
