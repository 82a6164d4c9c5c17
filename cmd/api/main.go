package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "review_radar/internal/adapters/http_server"
	"review_radar/internal/adapters/observability"
	redisad "review_radar/internal/adapters/redis"
	"review_radar/internal/adapters/vader"
	"review_radar/internal/app"
	"review_radar/internal/shared"
	"review_radar/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	scorer := vader.New()
	store := memory.New(scorer)

	// bulk load: ids and timestamps come from the file, sentiment is
	// computed here so every stored record is complete from the start
	reviews, err := app.LoadCSV(context.Background(), cfg.ReviewsCSV, scorer, cfg.LoadWorkers)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ReviewsCSV).Msg("bulk load failed")
	}
	store.Seed(reviews)
	log.Info().Int("reviews", len(reviews)).Msg("bulk load ok")

	// query cache is optional; REDIS_ADDR empty runs uncached
	var q *app.QueryService
	if cfg.RedisAddr != "" {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		q = app.NewQueryService(store, cache, cfg.CacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("query cache enabled")
	} else {
		q = app.NewQueryService(store, nil, 0)
	}

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Store: store})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
