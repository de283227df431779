package loader

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// CoerceRow converts one CSV record into a document, keeping only
// whitelisted columns and coercing each to its target type. ok=false
// drops the whole row: a row whose numeric field fails to parse is
// excluded, not defaulted.
func CoerceRow(header []string, record []string, columns map[string]Kind) (bson.M, bool) {
	doc := bson.M{}
	for i, col := range header {
		kind, wanted := columns[col]
		if !wanted || i >= len(record) {
			continue
		}
		raw := strings.TrimSpace(record[i])
		switch kind {
		case Long:
			// Snapshots store some integer columns as "1965.0".
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, false
			}
			doc[col] = int64(f)
		case Double:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, false
			}
			doc[col] = f
		case Text:
			doc[col] = raw
		}
	}
	return doc, true
}
