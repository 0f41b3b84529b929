package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getFunc func(ctx context.Context, key string) ([]byte, error)
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func TestNewImageService(t *testing.T) {
	service := NewImageService(interfaces.Dependencies{})

	if service == nil {
		t.Error("NewImageService returned nil")
	}
}

func TestEnrichImages_UsesCachedImage(t *testing.T) {
	cache := newMockCache()
	cache.entries["productImage:https://www.example.com/listing/1"] = []byte("https://cdn.example.com/1.jpg")

	service := NewImageService(interfaces.Dependencies{Cache: cache})
	products := []domain.Product{
		{Name: "Widget", URL: "https://www.example.com/listing/1", Store: domain.StoreAmazon},
	}

	enriched := service.EnrichImages(context.Background(), products)

	if enriched[0].ImageURL != "https://cdn.example.com/1.jpg" {
		t.Errorf("ImageURL = %v, want cached value", enriched[0].ImageURL)
	}
}

func TestEnrichImages_KeepsExistingImage(t *testing.T) {
	cache := newMockCache()
	cacheHit := false
	cache.getFunc = func(ctx context.Context, key string) ([]byte, error) {
		cacheHit = true
		return []byte("https://cdn.example.com/other.jpg"), nil
	}

	service := NewImageService(interfaces.Dependencies{Cache: cache})
	products := []domain.Product{
		{Name: "Widget", URL: "https://www.example.com/listing/1", ImageURL: "https://cdn.example.com/original.jpg"},
	}

	enriched := service.EnrichImages(context.Background(), products)

	if enriched[0].ImageURL != "https://cdn.example.com/original.jpg" {
		t.Errorf("ImageURL = %v, existing image must be kept", enriched[0].ImageURL)
	}
	if cacheHit {
		t.Error("products with an image should not trigger a lookup")
	}
}

func TestEnrichImages_SkipsProductsWithoutURL(t *testing.T) {
	cache := newMockCache()
	lookups := 0
	cache.getFunc = func(ctx context.Context, key string) ([]byte, error) {
		lookups++
		return []byte("x"), nil
	}

	service := NewImageService(interfaces.Dependencies{Cache: cache})
	products := []domain.Product{{Name: "No link", Store: domain.StoreEBay}}

	enriched := service.EnrichImages(context.Background(), products)

	if enriched[0].ImageURL != "" {
		t.Errorf("ImageURL = %v, want empty", enriched[0].ImageURL)
	}
	if lookups != 0 {
		t.Error("products without a URL should not be looked up")
	}
}

func TestEnrichImages_PreservesOrderAndFields(t *testing.T) {
	cache := newMockCache()
	cache.entries["productImage:https://www.example.com/b"] = []byte("https://cdn.example.com/b.jpg")

	service := NewImageService(interfaces.Dependencies{Cache: cache})
	products := []domain.Product{
		{Name: "A", Price: 10, URL: "", Store: domain.StoreAmazon},
		{Name: "B", Price: 20, URL: "https://www.example.com/b", Store: domain.StoreEBay, Availability: "Available"},
	}

	enriched := service.EnrichImages(context.Background(), products)

	if len(enriched) != 2 {
		t.Fatalf("EnrichImages returned %d products, want 2", len(enriched))
	}
	if enriched[0].Name != "A" || enriched[1].Name != "B" {
		t.Error("EnrichImages must preserve product order")
	}
	if enriched[1].Price != 20 || enriched[1].Availability != "Available" {
		t.Error("EnrichImages must not alter other fields")
	}
	if products[1].ImageURL != "" {
		t.Error("EnrichImages must not mutate the input slice")
	}
}

func TestScrapeImage_RejectsNonHTTPURLs(t *testing.T) {
	service := NewImageService(interfaces.Dependencies{})

	for _, bad := range []string{"", "about:blank", "ftp://example.com/x"} {
		if got := service.scrapeImage(bad); got != "" {
			t.Errorf("scrapeImage(%q) = %v, want empty", bad, got)
		}
	}
}
