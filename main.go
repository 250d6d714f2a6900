package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-valuator/config"
	httpLayer "auction-valuator/http"
	"auction-valuator/logger"
	"auction-valuator/repository"
	"auction-valuator/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Pretty,
	})

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-process cache")
			cache = repository.NewMockCache()
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("using redis result cache")
			cache = redisCache
		}
	} else {
		cache = repository.NewMockCache()
	}

	simulationRepo := repository.NewSimulationRepositoryMemory()

	simulationService := service.NewSimulationService(simulationRepo, cache, log)
	simulationHandler := httpLayer.NewSimulationHandler(simulationService, log)

	sweepService := service.NewHoldingSweepService(simulationService, log)
	sweepHandler := httpLayer.NewHoldingSweepHandler(sweepService, log)

	comparisonService := service.NewFinancingComparisonService(simulationService, log)
	comparisonHandler := httpLayer.NewFinancingComparisonHandler(comparisonService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitSpan)
	defer rateLimiter.Stop()

	guard := func(h http.Handler) http.Handler {
		return httpLayer.AccessMiddleware(cfg.AccessCode,
			httpLayer.RateLimitMiddleware(rateLimiter, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/simulate", guard(http.HandlerFunc(simulationHandler.Simulate)))
	mux.Handle("/simulate/holding-sweep", guard(http.HandlerFunc(sweepHandler.Sweep)))
	mux.Handle("/simulate/compare-financing", guard(http.HandlerFunc(comparisonHandler.Compare)))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("auction valuator listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("server failed to start")
		return
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}
