// ABOUTME: Product image enrichment service backfilling missing images from listing pages
// ABOUTME: Uses colly to read Open Graph image tags; best effort and cached

package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/gocolly/colly"
)

const (
	collyUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"

	imageCacheTTL  = 24 * time.Hour
	lookupTimeout  = 10 * time.Second
	maxConcurrency = 10
)

// ImageService backfills missing product images by reading the listing
// page's og:image tag. Lookups are best effort: a failed lookup leaves
// the product unchanged and is never reported to the caller.
type ImageService struct {
	deps interfaces.Dependencies
}

// NewImageService creates a new image enrichment service
func NewImageService(deps interfaces.Dependencies) *ImageService {
	return &ImageService{
		deps: deps,
	}
}

// EnrichImages returns a copy of products with missing ImageURLs filled
// in where the listing page exposes one. Order and every other field are
// preserved.
func (s *ImageService) EnrichImages(ctx context.Context, products []domain.Product) []domain.Product {
	enriched := make([]domain.Product, len(products))
	copy(enriched, products)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrency)

	for i := range enriched {
		if enriched[i].ImageURL != "" || enriched[i].URL == "" {
			continue
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if imageURL := s.lookupImage(ctx, enriched[idx].URL); imageURL != "" {
				enriched[idx].ImageURL = imageURL
			}
		}(i)
	}

	wg.Wait()
	return enriched
}

// lookupImage resolves the og:image of a listing page, consulting the
// cache first.
func (s *ImageService) lookupImage(ctx context.Context, pageURL string) string {
	cacheKey := "productImage:" + pageURL

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data)
		}
	}

	imageURL := s.scrapeImage(pageURL)

	if s.deps.Cache != nil && imageURL != "" {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(imageURL), imageCacheTTL)
	}

	return imageURL
}

// scrapeImage fetches the page and reads its Open Graph image tag.
func (s *ImageService) scrapeImage(pageURL string) string {
	if pageURL == "" || !strings.HasPrefix(pageURL, "http") {
		return ""
	}

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(lookupTimeout)

	var imageURL string

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		if imageURL != "" {
			return
		}
		property := e.Attr("property")
		content := e.Attr("content")
		if (property == "og:image" || property == "og:image:url") && content != "" {
			imageURL = content
		}
	})

	if err := c.Visit(pageURL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("product image lookup failed", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return ""
	}
	c.Wait()

	return imageURL
}
