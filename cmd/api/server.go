package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	mw "github.com/5w1tchy/goodbooks-api/internal/api/middlewares"
	"github.com/5w1tchy/goodbooks-api/internal/api/router"
	"github.com/5w1tchy/goodbooks-api/internal/logging"
	"github.com/5w1tchy/goodbooks-api/internal/repository/mongoconnect"
)

func main() {
	_ = godotenv.Load()
	logging.Init()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8000"
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		apiKey = "dev-key"
		log.Warn().Msg("API_KEY not set, using dev default")
	}

	client, db, err := mongoconnect.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("store connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Str("db", db.Name()).Msg("connected to store")

	start := time.Now()
	handler := router.Router(client, db, mw.StaticKeyGate(apiKey), start)

	chain := []mw.Middleware{
		mw.RequestID,
		mw.RequestLog(log.Logger),
		mw.Recovery,
		mw.Cors,
		mw.ResponseTime,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.BodySizeLimit,
	}

	// Rate limiting rides on Redis when one is configured; without it the
	// API still serves.
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		if opt.TLSConfig == nil && opt.Username != "" {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		log.Info().Msg("rate limiting enabled")

		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}

	chain = append(chain, mw.Compression, mw.SecurityHeaders)

	server := &http.Server{
		Addr:              addr,
		Handler:           mw.Apply(handler, chain...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
