package main

import (
	"context"
	"log"

	"github.com/netrank-labs/netrank-backend/config"
	"github.com/netrank-labs/netrank-backend/internal/bootstrap"
	cronjob "github.com/netrank-labs/netrank-backend/internal/linkanalysis/cron"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/hits"
	rankhttp "github.com/netrank-labs/netrank-backend/internal/linkanalysis/http"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/pagerank"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/repository"
	"github.com/netrank-labs/netrank-backend/internal/linkanalysis/service"
	netrepo "github.com/netrank-labs/netrank-backend/internal/networks/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	// Sample networks are loaded once here and shared read-only across
	// all requests for the process lifetime.
	store, err := netrepo.NewStore(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("load networks: %v", err)
	}

	ctx := context.Background()
	redisClient, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if redisClient == nil {
		log.Println("REDIS_ADDR not set, result caching disabled")
	}

	defaults := rankhttp.Defaults{
		DampingFactor:        cfg.Algorithm.DampingFactor,
		MaxIterations:        cfg.Algorithm.MaxIterations,
		ConvergenceThreshold: cfg.Algorithm.ConvergenceThreshold,
	}

	if redisClient != nil && cfg.Cache.WarmSchedule != "" {
		cache := repository.NewResultCache(redisClient, cfg.Cache.TTL)
		warmer := cronjob.NewScheduler(
			service.NewAnalysisService(cache),
			store,
			pagerank.Config{
				DampingFactor:        defaults.DampingFactor,
				MaxIterations:        defaults.MaxIterations,
				ConvergenceThreshold: defaults.ConvergenceThreshold,
			},
			hits.Config{
				MaxIterations:        defaults.MaxIterations,
				ConvergenceThreshold: defaults.ConvergenceThreshold,
			},
		)
		warmer.Start(cfg.Cache.WarmSchedule)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "netrank-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Store:          store,
		Redis:          redisClient,
		CacheTTL:       cfg.Cache.TTL,
		Defaults:       defaults,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
