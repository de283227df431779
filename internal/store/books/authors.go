package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// AuthorFilter matches the comma-joined authors field, case-insensitively.
// exact anchors the whole field, so "Jane Austen" will not match
// "Jane Austen Jr.".
func AuthorFilter(name string, exact bool) bson.M {
	if exact {
		return bson.M{"authors": mongox.Exact(name)}
	}
	return bson.M{"authors": mongox.Substring(name)}
}

// ByAuthor pages over books whose authors field matches name.
func ByAuthor(ctx context.Context, db *mongo.Database, name string, exact bool, page, pageSize int) ([]models.Book, int64, error) {
	filt := AuthorFilter(name, exact)
	coll := db.Collection(shared.Books)

	total, err := coll.CountDocuments(ctx, filt)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSkip(validate.Offset(page, pageSize)).
		SetLimit(int64(pageSize))
	cur, err := coll.Find(ctx, filt, opts)
	if err != nil {
		return nil, 0, err
	}
	items, err := mongox.All[models.Book](ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
