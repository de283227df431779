package books

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	storebooks "github.com/5w1tchy/goodbooks-api/internal/store/books"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// Tags pages over the tags attached to one book. Unknown book is a 404;
// a book with no tags is an empty page.
func Tags(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validate.ID("book_id", r.PathValue("book_id"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		page, pageSize, err := validate.Pagination(
			r.URL.Query().Get("page"), r.URL.Query().Get("page_size"))
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

		items, total, err := storebooks.TagsForBook(r.Context(), db, b.GoodreadsBookID, page, pageSize)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.Paginated{
			Items: items, Page: page, PageSize: pageSize, Total: total,
		})
	}
}
