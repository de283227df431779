package ratings

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
	"github.com/5w1tchy/goodbooks-api/internal/store/shared"
)

// Bucket is one grouped aggregation row: a rating value and how many
// documents carry it.
type Bucket struct {
	Rating int64 `bson:"_id"`
	Count  int64 `bson:"count"`
}

// Summary groups a book's ratings by value and folds them into the
// fixed 1..5 histogram.
func Summary(ctx context.Context, db *mongo.Database, bookID int64) (models.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := db.Collection(shared.Ratings).Aggregate(ctx, pipeline)
	if err != nil {
		return models.RatingSummary{}, err
	}
	buckets, err := mongox.All[Bucket](ctx, cur)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return Summarize(buckets), nil
}

// Summarize tallies grouped rating counts into the 1..5 histogram.
// Keys outside [1,5] are ignored so corrupt documents cannot skew the
// average. With no ratings, avg is 0.0 and the histogram is all zeros.
func Summarize(buckets []Bucket) models.RatingSummary {
	hist := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	var total, sum int64
	for _, b := range buckets {
		if b.Rating < 1 || b.Rating > 5 {
			continue
		}
		hist[int(b.Rating)] = b.Count
		total += b.Count
		sum += b.Rating * b.Count
	}
	avg := 0.0
	if total > 0 {
		avg = math.Round(float64(sum)/float64(total)*1000) / 1000
	}
	return models.RatingSummary{Avg: avg, Count: total, Histogram: hist}
}
