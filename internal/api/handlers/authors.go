package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	storebooks "github.com/5w1tchy/goodbooks-api/internal/store/books"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// AuthorBooks pages over books whose authors field matches the path
// segment: substring match by default, whole-field when exact=true.
func AuthorBooks(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("author_name")
		exact := validate.Bool(r.URL.Query().Get("exact"))

		page, pageSize, err := validate.Pagination(
			r.URL.Query().Get("page"), r.URL.Query().Get("page_size"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}

		items, total, err := storebooks.ByAuthor(r.Context(), db, name, exact, page, pageSize)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.Paginated{
			Items: items, Page: page, PageSize: pageSize, Total: total,
		})
	}
}
