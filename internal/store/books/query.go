package books

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/5w1tchy/goodbooks-api/internal/store/mongox"
)

// BuildFilter translates listing parameters into a store predicate.
// All clauses AND together; the free-text clause is an internal OR over
// title/authors. The tag filter is resolved separately (it needs two
// lookups) and intersected by the caller via goodreads_book_id.
func BuildFilter(f ListFilters) bson.M {
	filt := bson.M{}
	if f.Q != "" {
		filt["$or"] = bson.A{
			bson.M{"title": mongox.Substring(f.Q)},
			bson.M{"authors": mongox.Substring(f.Q)},
		}
	}
	if f.MinAvg != nil {
		filt["average_rating"] = bson.M{"$gte": *f.MinAvg}
	}
	year := bson.M{}
	if f.YearFrom != nil {
		year["$gte"] = *f.YearFrom
	}
	if f.YearTo != nil {
		year["$lte"] = *f.YearTo
	}
	if len(year) > 0 {
		filt["original_publication_year"] = year
	}
	return filt
}

var sortFields = map[string]string{
	"avg":           "average_rating",
	"ratings_count": "ratings_count",
	"year":          "original_publication_year",
	"title":         "title",
}

// SortSpec maps the sort/order enums onto a store sort document.
// Ties are left to the store's natural order, which is stable for a
// fixed dataset.
func SortSpec(sort, order string) bson.D {
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: sortFields[sort], Value: dir}}
}
