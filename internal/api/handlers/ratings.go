package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/ratings"
)

// ratingIn decodes with pointer fields so an absent key is
// distinguishable from a zero value.
type ratingIn struct {
	UserID *int64 `json:"user_id"`
	BookID *int64 `json:"book_id"`
	Rating *int64 `json:"rating"`
}

// UpsertRating creates or replaces the rating for (user_id, book_id).
// 201 with {"status":"created"} on insert, 200 with {"status":"updated"}
// on overwrite. Body shape and rating range are checked here, before any
// store access.
func UpsertRating(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in ratingIn
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			httpx.BadRequest(w, "malformed rating body")
			return
		}
		if in.UserID == nil || in.BookID == nil || in.Rating == nil {
			httpx.BadRequest(w, "user_id, book_id and rating are required")
			return
		}
		if *in.Rating < 1 || *in.Rating > 5 {
			httpx.BadRequest(w, "rating must be in [1, 5]")
			return
		}

		created, err := ratings.Upsert(r.Context(), db, models.Rating{
			UserID: *in.UserID, BookID: *in.BookID, Rating: *in.Rating,
		})
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		if created {
			httpx.WriteJSON(w, http.StatusCreated, map[string]string{"status": "created"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}
