package tags

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
)

// countRow is one grouped book_tags aggregation row.
type countRow struct {
	TagID int64 `bson:"_id"`
	Cnt   int64 `bson:"cnt"`
}

// List pages over the tags collection and decorates the page with
// book_count: the number of book_tags rows per tag, grouped in one
// aggregation over the page's ids. Tags with no rows get 0.
func List(ctx context.Context, db *mongo.Database, page, pageSize int) ([]models.Tag, int64, error) {
	coll := db.Collection(shared.Tags)
	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))
	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	tagsPage, err := mongox.All[models.Tag](ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	if len(tagsPage) == 0 {
		return tagsPage, total, nil
	}

	ids := make([]int64, 0, len(tagsPage))
	for _, t := range tagsPage {
		ids = append(ids, t.TagID)
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tag_id": bson.M{"$in": ids}}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$tag_id",
			"cnt": bson.M{"$sum": 1},
		}}},
	}
	acur, err := db.Collection(shared.BookTags).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	rows, err := mongox.All[countRow](ctx, acur)
	if err != nil {
		return nil, 0, err
	}
	counts := make(map[int64]int64, len(rows))
	for _, r := range rows {
		counts[r.TagID] = r.Cnt
	}
	for i := range tagsPage {
		n := counts[tagsPage[i].TagID]
		tagsPage[i].BookCount = &n
	}
	return tagsPage, total, nil
}
