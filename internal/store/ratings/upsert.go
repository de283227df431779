package ratings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
)

// Upsert creates or replaces the rating for (user_id, book_id) in one
// atomic store operation. Two concurrent upserts for the same key cannot
// produce duplicate documents. created reports whether a new document was
// inserted.
func Upsert(ctx context.Context, db *mongo.Database, r models.Rating) (created bool, err error) {
	res, err := db.Collection(shared.Ratings).UpdateOne(ctx,
		bson.M{"user_id": r.UserID, "book_id": r.BookID},
		bson.M{"$set": r},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
