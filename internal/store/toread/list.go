package toread

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// joined is a to_read row with its looked-up book.
type joined struct {
	Book models.Book `bson:"book"`
}

// ForUser pages over a user's reading list joined against books. Total
// counts raw to_read rows for the user, independent of the join: a
// dangling book_id shrinks the page, not the total.
func ForUser(ctx context.Context, db *mongo.Database, userID int64, page, pageSize int) ([]models.Book, int64, error) {
	coll := db.Collection(shared.ToRead)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         shared.Books,
			"localField":   "book_id",
			"foreignField": "book_id",
			"as":           "book",
		}}},
		{{Key: "$unwind", Value: "$book"}},
		{{Key: "$skip", Value: validate.Offset(page, pageSize)}},
		{{Key: "$limit", Value: int64(pageSize)}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	rows, err := mongox.All[joined](ctx, cur)
	if err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.Book, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.Book)
	}
	return items, total, nil
}
