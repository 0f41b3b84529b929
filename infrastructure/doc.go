// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and persistence.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with per-host rate limiting
// - logger/logrus: Structured logger backed by logrus
// - storage/sqlite: SQLite-backed search history store
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client enforces a per-host outbound rate budget so that
// storefronts are never hammered, regardless of inbound request volume:
//
//	client := standard.NewStandardHTTPClient(10*time.Second, 2)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # History Store
//
// The SQLite store records every search and the unfiltered snapshots it
// produced:
//
//	store, err := sqlite.NewStore("price_history.db", 50)
//	id, err := store.CreateSearchRecord(ctx, "wireless headphones")
//	err = store.AppendSnapshots(ctx, id, products)
package infrastructure
