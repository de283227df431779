package router

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/5w1tchy/goodbooks-api/internal/api/handlers"
	"github.com/5w1tchy/goodbooks-api/internal/api/handlers/books"
	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
)

// Router wires every endpoint. The store handle is injected; handlers
// own no connection state. The write path sits behind the API-key gate.
func Router(client *mongo.Client, db *mongo.Database, gate mw.Gate, start time.Time) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", handlers.Healthz(client))
	mux.Handle("GET /metrics", handlers.Metrics(start))

	mux.Handle("GET /books", books.List(db))
	mux.Handle("GET /books/{book_id}", books.Get(db))
	mux.Handle("GET /books/{book_id}/tags", books.Tags(db))
	mux.Handle("GET /books/{book_id}/ratings/summary", books.RatingsSummary(db))

	mux.Handle("GET /authors/{author_name}/books", handlers.AuthorBooks(db))
	mux.Handle("GET /tags", handlers.ListTags(db))
	mux.Handle("GET /users/{user_id}/to-read", handlers.UserToRead(db))

	mux.Handle("POST /ratings", mw.RequireKey(gate)(handlers.UpsertRating(db)))

	return mux
}
