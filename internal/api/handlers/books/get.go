package books

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/goodbooks-api/internal/store/books"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// Get fetches one book by its stable key and exposes a content
// fingerprint over (book_id, ratings_count, average_rating) as the ETag,
// so clients can detect rating drift without re-fetching the body.
func Get(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validate.ID("book_id", r.PathValue("book_id"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}

		b, err := storebooks.FetchByID(r.Context(), db, bookID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w, "book not found")
			return
		}
		if err != nil {
			httpx.StoreError(w, err)
			return
		}

		w.Header().Set("ETag", storebooks.Fingerprint(b))
		httpx.WriteJSON(w, http.StatusOK, b)
	}
}
