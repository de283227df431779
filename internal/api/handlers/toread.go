package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	"github.com/5w1tchy/goodbooks-api/internal/store/toread"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// UserToRead pages over a user's reading list joined against books.
func UserToRead(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := validate.ID("user_id", r.PathValue("user_id"))
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

		items, total, err := toread.ForUser(r.Context(), db, userID, page, pageSize)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.Paginated{
			Items: items, Page: page, PageSize: pageSize, Total: total,
		})
	}
}
