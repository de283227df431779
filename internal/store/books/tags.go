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

// TagsForBook lists the tags attached to a book. The association rows are
// collected first and the page window is sliced over that id list, so
// total counts association rows; the Tag documents for the window are
// then fetched in store order. The caller resolves the book (and its
// 404) beforehand.
func TagsForBook(ctx context.Context, db *mongo.Database, goodreadsBookID int64, page, pageSize int) ([]models.Tag, int64, error) {
	cur, err := db.Collection(shared.BookTags).Find(ctx,
		bson.M{"goodreads_book_id": goodreadsBookID},
		options.Find().SetProjection(bson.M{"tag_id": 1}))
	if err != nil {
		return nil, 0, err
	}
	assocs, err := mongox.All[models.BookTag](ctx, cur)
	if err != nil {
		return nil, 0, err
	}

	tagIDs := make([]int64, 0, len(assocs))
	for _, a := range assocs {
		tagIDs = append(tagIDs, a.TagID)
	}
	total := int64(len(tagIDs))

	window := SliceWindow(tagIDs, page, pageSize)
	if len(window) == 0 {
		return []models.Tag{}, total, nil
	}

	tcur, err := db.Collection(shared.Tags).Find(ctx, bson.M{"tag_id": bson.M{"$in": window}})
	if err != nil {
		return nil, 0, err
	}
	tags, err := mongox.All[models.Tag](ctx, tcur)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// SliceWindow applies the page window to an in-memory id list. The
// offset is computed in clamped int64 so huge page numbers resolve to an
// empty window instead of wrapping negative.
func SliceWindow(ids []int64, page, pageSize int) []int64 {
	start := validate.Offset(page, pageSize)
	if start >= int64(len(ids)) {
		return nil
	}
	end := start + int64(pageSize)
	if end > int64(len(ids)) {
		end = int64(len(ids))
	}
	return ids[start:end]
}
