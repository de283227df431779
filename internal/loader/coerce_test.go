package loader

import "testing"

var ratingCols = map[string]Kind{
	"user_id": Long,
	"book_id": Long,
	"rating":  Long,
}

func TestCoerceRow_HappyPath(t *testing.T) {
	header := []string{"user_id", "book_id", "rating"}
	doc, ok := CoerceRow(header, []string{"7", "1", "5"}, ratingCols)
	if !ok {
		t.Fatal("row should survive coercion")
	}
	if doc["user_id"] != int64(7) || doc["book_id"] != int64(1) || doc["rating"] != int64(5) {
		t.Errorf("doc = %v", doc)
	}
}

func TestCoerceRow_DropsRowOnBadNumeric(t *testing.T) {
	header := []string{"user_id", "book_id", "rating"}
	if _, ok := CoerceRow(header, []string{"7", "one", "5"}, ratingCols); ok {
		t.Error("row with unparseable long must be dropped, not defaulted")
	}
	if _, ok := CoerceRow(header, []string{"7", "1", ""}, ratingCols); ok {
		t.Error("row with empty numeric field must be dropped")
	}
}

func TestCoerceRow_FloatStyleIntegers(t *testing.T) {
	// Snapshots serialize some integer columns as "1965.0".
	header := []string{"book_id", "original_publication_year"}
	cols := map[string]Kind{"book_id": Long, "original_publication_year": Long}
	doc, ok := CoerceRow(header, []string{"1", "1965.0"}, cols)
	if !ok {
		t.Fatal("float-styled integer should coerce")
	}
	if doc["original_publication_year"] != int64(1965) {
		t.Errorf("year = %v", doc["original_publication_year"])
	}
}

func TestCoerceRow_DoubleAndText(t *testing.T) {
	header := []string{"book_id", "average_rating", "title"}
	cols := map[string]Kind{"book_id": Long, "average_rating": Double, "title": Text}
	doc, ok := CoerceRow(header, []string{"1", "4.25", "Dune"}, cols)
	if !ok {
		t.Fatal("row should survive coercion")
	}
	if doc["average_rating"] != 4.25 {
		t.Errorf("average_rating = %v", doc["average_rating"])
	}
	if doc["title"] != "Dune" {
		t.Errorf("title = %v", doc["title"])
	}
}

func TestCoerceRow_RestrictsToExpectedColumns(t *testing.T) {
	header := []string{"book_id", "isbn", "rating"}
	doc, ok := CoerceRow(header, []string{"1", "9780441013593", "4"}, ratingCols)
	if !ok {
		t.Fatal("row should survive coercion")
	}
	if _, has := doc["isbn"]; has {
		t.Error("unexpected column should be dropped")
	}
	if len(doc) != 2 {
		t.Errorf("doc = %v", doc)
	}
}
