package books

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/store/ratings"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// RatingsSummary returns the derived per-book rating aggregate.
// A book nobody rated yields count=0, avg=0.0 and an all-zero histogram.
func RatingsSummary(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validate.ID("book_id", r.PathValue("book_id"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}

		sum, err := ratings.Summary(r.Context(), db, bookID)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, sum)
	}
}
