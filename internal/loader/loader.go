// Package loader bulk-inserts the goodbooks CSV snapshots into the
// document store. It is a best-effort, rerunnable batch job: no dedupe,
// no transactionality, and rerunning inserts duplicates. A fetch failure
// aborts the whole run.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const insertBatchSize = 1000

// Run loads all five snapshots sequentially. base is joined with
// "<name>.csv" for each source.
func Run(ctx context.Context, db *mongo.Database, base string, fetch Fetcher) error {
	for _, src := range Sources {
		url := fmt.Sprintf("%s/%s.csv", base, src.Name)
		n, dropped, err := loadOne(ctx, db, src, url, fetch)
		if err != nil {
			return fmt.Errorf("load %s: %w", src.Name, err)
		}
		log.Info().
			Str("collection", src.Name).
			Int("inserted", n).
			Int("dropped", dropped).
			Msg("snapshot loaded")
	}
	return nil
}

func loadOne(ctx context.Context, db *mongo.Database, src Source, url string, fetch Fetcher) (inserted, dropped int, err error) {
	body, err := fetch.Fetch(ctx, url)
	if err != nil {
		return 0, 0, err
	}
	defer body.Close()

	r := csv.NewReader(body)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}

	coll := db.Collection(src.Name)
	batch := make([]any, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := coll.InsertMany(ctx, batch); err != nil {
			return err
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, dropped, fmt.Errorf("read row: %w", err)
		}
		doc, ok := CoerceRow(header, record, src.Columns)
		if !ok {
			dropped++
			continue
		}
		batch = append(batch, bson.M(doc))
		if len(batch) == insertBatchSize {
			if err := flush(); err != nil {
				return inserted, dropped, err
			}
		}
	}
	return inserted, dropped, flush()
}
