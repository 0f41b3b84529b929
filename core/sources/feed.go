// ABOUTME: RSS/Atom source adapter for storefronts exposing search results as feeds
// ABOUTME: Configurable store label and URL template; prices recovered from item titles

package sources

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/404PageFinder/BestPrice-Checker/core/pricing"
	"github.com/mmcdole/gofeed"
)

// FeedSource adapts a storefront that publishes search results as an
// RSS or Atom feed. Unlike the HTML adapters its shape mapping is a
// feed-item mapping, but it sits behind the same SourceAdapter
// interface: adding a feed-backed store is one constructor call.
type FeedSource struct {
	deps         interfaces.Dependencies
	opts         Options
	store        string
	urlTemplate  string
	availability string
	base         *url.URL
}

// NewFeedSource creates a feed-backed source adapter. urlTemplate must
// contain one %s placeholder for the percent-encoded query, e.g.
// "https://shop.example.com/search.rss?q=%s".
func NewFeedSource(deps interfaces.Dependencies, store, urlTemplate, availability string, opts Options) *FeedSource {
	base, _ := url.Parse(fmt.Sprintf(urlTemplate, ""))
	return &FeedSource{
		deps:         deps,
		opts:         opts.withDefaults(),
		store:        store,
		urlTemplate:  urlTemplate,
		availability: availability,
		base:         base,
	}
}

// Store returns the configured store label for this adapter
func (s *FeedSource) Store() string {
	return s.store
}

// Search fetches and parses the storefront's result feed for the query.
// Any failure is logged and yields an empty slice.
func (s *FeedSource) Search(ctx context.Context, query string) []domain.Product {
	searchURL := fmt.Sprintf(s.urlTemplate, url.QueryEscape(query))

	body, err := fetch(ctx, s.deps.HTTPClient, s.store, searchURL, s.opts.Timeout)
	if err != nil {
		logWarn(s.deps.Logger, "feed source fetch failed", map[string]interface{}{
			"store": s.store,
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}
	defer body.Close()

	products, err := s.parse(body)
	if err != nil {
		logWarn(s.deps.Logger, "feed source parse failed", map[string]interface{}{
			"store": s.store,
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}

	return products
}

// parse maps up to MaxResults feed items to products. Items without a
// title are skipped; titles without a recognizable number produce
// zero-price records, which ranking filters but history keeps.
func (s *FeedSource) parse(body io.Reader) ([]domain.Product, error) {
	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}

	for _, item := range feed.Items {
		if len(products) >= s.opts.MaxResults {
			break
		}

		name := strings.TrimSpace(item.Title)
		if name == "" {
			continue
		}

		product := domain.Product{
			Name:         name,
			Price:        titlePrice(name),
			URL:          resolveLink(s.base, item.Link),
			Store:        s.store,
			Availability: s.availability,
		}
		if item.Image != nil {
			product.ImageURL = resolveLink(s.base, item.Image.URL)
		}

		products = append(products, product)
	}

	return products, nil
}

// titlePrice recovers a price from a feed item title. Titles often carry
// both a model number and a price ("Widget 2000 - $24.99"), so a
// currency-marked amount wins over the first bare number.
func titlePrice(title string) float64 {
	if idx := strings.LastIndex(title, "$"); idx >= 0 {
		if price := pricing.ParsePrice(title[idx:]); price > 0 {
			return price
		}
	}
	return pricing.ParsePrice(title)
}
