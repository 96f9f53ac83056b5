package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/jobupdate/jobwire/internal/app"
	"github.com/jobupdate/jobwire/internal/config"
	"github.com/jobupdate/jobwire/internal/dedupe"
	"github.com/jobupdate/jobwire/internal/fetch"
	"github.com/jobupdate/jobwire/internal/normalize"
	"github.com/jobupdate/jobwire/internal/notify"
	"github.com/jobupdate/jobwire/internal/pipeline"
	"github.com/jobupdate/jobwire/internal/sources"
	"github.com/jobupdate/jobwire/internal/store"
)

// buildApp constructs the full application from configuration. The cleanup
// function closes the store and cache connections.
func buildApp(ctx context.Context) (*app.App, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var seen dedupe.SeenCache
	var pageCache fetch.Cache
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			st.Close()
			return nil, nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			// The store remains the dedup source of truth.
			log.Printf("[WIRE] redis unavailable, continuing without caches: %v", err)
			_ = client.Close()
		} else {
			redisClient = client
			seen = dedupe.NewRedisSeenCache(client)
			pageCache = fetch.NewRedisCache(client)
		}
	}

	registry, err := sources.Build(cfg.Sources, cfg.Verbose)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	pipe := pipeline.New(
		registry,
		normalize.New(),
		dedupe.NewChecker(st, seen),
		st,
		&pipeline.Options{
			SubsetSize:    cfg.SubsetSize,
			FetchArticles: cfg.FetchArticles,
			Fetcher:       fetch.NewCachedFetcher(pageCache, nil, 0),
		},
	)

	a := &app.App{Store: st, Pipeline: pipe}
	if cfg.TelegramBotToken != "" {
		client := notify.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramChatID, "")
		a.Poster = notify.NewPoster(client, st)
	}

	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		st.Close()
	}
	return a, cfg, cleanup, nil
}
