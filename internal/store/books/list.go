package books

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// List returns one page of books matching the filters plus the total
// match count (independent of the page window). An unknown tag name or a
// tag with no associated books is not an error: it yields an empty page
// with total=0.
func List(ctx context.Context, db *mongo.Database, f ListFilters) ([]models.Book, int64, error) {
	filt := BuildFilter(f)

	if f.Tag != "" {
		goodreadsIDs, ok, err := tagBookIDs(ctx, db, f.Tag)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return []models.Book{}, 0, nil
		}
		filt["goodreads_book_id"] = bson.M{"$in": goodreadsIDs}
	}

	coll := db.Collection(shared.Books)
	total, err := coll.CountDocuments(ctx, filt)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(SortSpec(f.Sort, f.Order)).
		SetSkip(validate.Offset(f.Page, f.PageSize)).
		SetLimit(int64(f.PageSize))
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

// tagBookIDs resolves a tag name (anchored, case-insensitive) to the set
// of goodreads_book_ids carrying it. ok=false means the name matched no
// tag or the tag has no associated books.
func tagBookIDs(ctx context.Context, db *mongo.Database, tag string) ([]int64, bool, error) {
	var t models.Tag
	err := db.Collection(shared.Tags).
		FindOne(ctx, bson.M{"tag_name": mongox.Exact(tag)}).
		Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	cur, err := db.Collection(shared.BookTags).Find(ctx,
		bson.M{"tag_id": t.TagID},
		options.Find().SetProjection(bson.M{"goodreads_book_id": 1}))
	if err != nil {
		return nil, false, err
	}
	assocs, err := mongox.All[models.BookTag](ctx, cur)
	if err != nil {
		return nil, false, err
	}
	if len(assocs) == 0 {
		return nil, false, nil
	}
	ids := make([]int64, 0, len(assocs))
	for _, a := range assocs {
		ids = append(ids, a.GoodreadsBookID)
	}
	return ids, true, nil
}
