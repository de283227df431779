package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/5w1tchy/goodbooks-api/internal/loader"
	"github.com/5w1tchy/goodbooks-api/internal/logging"
	"github.com/5w1tchy/goodbooks-api/internal/repository/mongoconnect"
)

const defaultBase = "https://raw.githubusercontent.com/zygmuntz/goodbooks-10k/master/samples"

func main() {
	_ = godotenv.Load()
	logging.Init()

	base := os.Getenv("SNAPSHOT_BASE_URL")
	if base == "" {
		base = defaultBase
	}

	client, db, err := mongoconnect.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("store connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := loader.Run(context.Background(), db, base, loader.NewSnapshotFetcher()); err != nil {
		log.Fatal().Err(err).Msg("load aborted")
	}
	log.Info().Msg("data loaded successfully")
}
