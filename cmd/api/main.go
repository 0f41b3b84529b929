// ABOUTME: Main entry point for the BestPrice Checker API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/api"
	"github.com/404PageFinder/BestPrice-Checker/api/handlers"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/404PageFinder/BestPrice-Checker/core/search"
	"github.com/404PageFinder/BestPrice-Checker/core/services"
	"github.com/404PageFinder/BestPrice-Checker/core/sources"
	"github.com/404PageFinder/BestPrice-Checker/infrastructure/cache/memory"
	"github.com/404PageFinder/BestPrice-Checker/infrastructure/cache/redis"
	stdhttp "github.com/404PageFinder/BestPrice-Checker/infrastructure/http/standard"
	logruslogger "github.com/404PageFinder/BestPrice-Checker/infrastructure/logger/logrus"
	"github.com/404PageFinder/BestPrice-Checker/infrastructure/storage/sqlite"
	"github.com/404PageFinder/BestPrice-Checker/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting BestPrice Checker API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"db_path":    cfg.History.DatabasePath,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client with per-host rate limiting
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.Sources.FetchTimeoutSeconds)*time.Second,
		float64(cfg.Sources.RequestsPerSecond),
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Open history store
	store, err := sqlite.NewStore(cfg.History.DatabasePath, cfg.History.DefaultLimit)
	if err != nil {
		log.Fatalf("Failed to open history store: %v", err)
	}
	defer store.Close()

	// Create source adapters. Registration order fixes tie-break order
	// for equally priced results.
	sourceOpts := sources.Options{
		Timeout:    time.Duration(cfg.Sources.FetchTimeoutSeconds) * time.Second,
		MaxResults: cfg.Sources.MaxResultsPerSource,
	}
	adapters := []interfaces.SourceAdapter{
		sources.NewAmazonSource(deps, sourceOpts),
		sources.NewEbaySource(deps, sourceOpts),
	}
	if cfg.Sources.FeedURLTemplate != "" {
		adapters = append(adapters, sources.NewFeedSource(
			deps,
			cfg.Sources.FeedLabel,
			cfg.Sources.FeedURLTemplate,
			cfg.Sources.FeedAvailability,
			sourceOpts,
		))
		logger.Info("Feed source enabled", map[string]interface{}{
			"store": cfg.Sources.FeedLabel,
		})
	}

	// Create services
	searchService := search.NewSearchService(deps, adapters...)
	searchService.SetHistoryStore(store)
	imageService := services.NewImageService(deps)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute per client
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(searchService, imageService)
	searchHandler.RegisterRoutes(humaAPI)

	historyHandler := handlers.NewHistoryHandler(store)
	historyHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Let in-flight history writes finish before the store closes.
	searchService.Close()

	logger.Info("Server stopped", nil)
}
