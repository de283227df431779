package books

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/httpx"
	"github.com/5w1tchy/goodbooks-api/internal/models"
	storebooks "github.com/5w1tchy/goodbooks-api/internal/store/books"
	"github.com/5w1tchy/goodbooks-api/internal/validate"
)

// List is the main catalog query: free text, tag, rating threshold, year
// range, sort and page window combined into one deterministic result set.
// All parameter validation happens before the store is touched.
func List(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qp := r.URL.Query()

		page, pageSize, err := validate.Pagination(qp.Get("page"), qp.Get("page_size"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		sort, err := validate.SortKey(qp.Get("sort"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		order, err := validate.Order(qp.Get("order"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		minAvg, err := validate.OptionalFloat("min_avg", qp.Get("min_avg"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		yearFrom, err := validate.OptionalInt("year_from", qp.Get("year_from"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}
		yearTo, err := validate.OptionalInt("year_to", qp.Get("year_to"))
		if err != nil {
			httpx.BadRequest(w, err.Error())
			return
		}

		f := storebooks.ListFilters{
			Q:        strings.TrimSpace(qp.Get("q")),
			Tag:      strings.TrimSpace(qp.Get("tag")),
			MinAvg:   minAvg,
			YearFrom: yearFrom,
			YearTo:   yearTo,
			Sort:     sort,
			Order:    order,
			Page:     page,
			PageSize: pageSize,
		}

		items, total, err := storebooks.List(r.Context(), db, f)
		if err != nil {
			httpx.StoreError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.Paginated{
			Items: items, Page: page, PageSize: pageSize, Total: total,
		})
	}
}
