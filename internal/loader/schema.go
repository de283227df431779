package loader

// Kind is the target type a snapshot column is coerced to.
type Kind int

const (
	Long Kind = iota
	Double
	Text
)

// Source describes one snapshot: the CSV file name stem doubles as the
// collection name, and Columns is the whitelist with target types.
// Columns not listed here are dropped.
type Source struct {
	Name    string
	Columns map[string]Kind
}

// Sources lists the five fixed snapshots in load order.
var Sources = []Source{
	{
		Name: "books",
		Columns: map[string]Kind{
			"book_id":                   Long,
			"goodreads_book_id":         Long,
			"title":                     Text,
			"authors":                   Text,
			"original_publication_year": Long,
			"average_rating":            Double,
			"ratings_count":             Long,
			"image_url":                 Text,
			"small_image_url":           Text,
		},
	},
	{
		Name: "ratings",
		Columns: map[string]Kind{
			"user_id": Long,
			"book_id": Long,
			"rating":  Long,
		},
	},
	{
		Name: "tags",
		Columns: map[string]Kind{
			"tag_id":   Long,
			"tag_name": Text,
		},
	},
	{
		Name: "book_tags",
		Columns: map[string]Kind{
			"goodreads_book_id": Long,
			"tag_id":            Long,
			"count":             Long,
		},
	},
	{
		Name: "to_read",
		Columns: map[string]Kind{
			"user_id": Long,
			"book_id": Long,
		},
	},
}
