// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, sources, history and cache settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Sources contains storefront fetch configuration
	Sources SourcesConfig

	// History contains search history persistence configuration
	History HistoryConfig

	// Cache contains cache configuration for enrichment lookups
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string
}

// SourcesConfig holds per-storefront fetch settings
type SourcesConfig struct {
	// FetchTimeoutSeconds is the fixed deadline for one source fetch
	FetchTimeoutSeconds int

	// MaxResultsPerSource caps candidate blocks per source per query
	MaxResultsPerSource int

	// RequestsPerSecond is the outbound per-host rate budget
	RequestsPerSecond int

	// FeedLabel is the store label for an optional feed-backed source
	FeedLabel string

	// FeedURLTemplate is the feed search URL with one %s placeholder
	// for the percent-encoded query. Empty disables the feed source.
	FeedURLTemplate string

	// FeedAvailability is the availability text stamped on feed results
	FeedAvailability string
}

// HistoryConfig holds search history settings
type HistoryConfig struct {
	// DatabasePath is the SQLite history file location
	DatabasePath string

	// DefaultLimit bounds recent-history reads when callers pass none
	DefaultLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Sources: SourcesConfig{
			FetchTimeoutSeconds: getEnvAsIntOrDefault("SOURCE_FETCH_TIMEOUT", 10),
			MaxResultsPerSource: getEnvAsIntOrDefault("SOURCE_MAX_RESULTS", 3),
			RequestsPerSecond:   getEnvAsIntOrDefault("SOURCE_REQUESTS_PER_SECOND", 2),
			FeedLabel:           getEnvOrDefault("SOURCE_FEED_LABEL", ""),
			FeedURLTemplate:     getEnvOrDefault("SOURCE_FEED_URL_TEMPLATE", ""),
			FeedAvailability:    getEnvOrDefault("SOURCE_FEED_AVAILABILITY", "Available"),
		},
		History: HistoryConfig{
			DatabasePath: getEnvOrDefault("HISTORY_DB_PATH", "price_history.db"),
			DefaultLimit: getEnvAsIntOrDefault("HISTORY_DEFAULT_LIMIT", 50),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Sources.FetchTimeoutSeconds < 1 {
		return errors.New("source fetch timeout must be at least 1 second")
	}

	if c.Sources.MaxResultsPerSource < 1 {
		return errors.New("max results per source must be at least 1")
	}

	if c.History.DefaultLimit < 1 {
		return errors.New("history default limit must be at least 1")
	}

	if c.Sources.FeedURLTemplate != "" {
		if c.Sources.FeedLabel == "" {
			return errors.New("feed source label cannot be empty when a feed URL template is set")
		}
		if strings.Count(c.Sources.FeedURLTemplate, "%s") != 1 {
			return errors.New("feed source URL template must contain exactly one %s placeholder")
		}
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
