package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	storetags "github.com/5w1tchy/goodbooks-api/internal/store/tags"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// ListTags pages over the tags collection with per-tag book counts.
func ListTags(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize, err := validate.Pagination(
			r.URL.Query().Get("page"), r.URL.Query().Get("page_size"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}

		items, total, err := storetags.List(r.Context(), db, page, pageSize)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.Paginated{
			Items: items, Page: page, PageSize: pageSize, Total: total,
		})
	}
}
