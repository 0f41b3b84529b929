// ABOUTME: Amazon source adapter extracting listings from Amazon search result markup
// ABOUTME: Selector set is Amazon-specific and isolated from every other source

package sources

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/404PageFinder/BestPrice-Checker/core/pricing"
	"github.com/PuerkitoBio/goquery"
)

const amazonBaseURL = "https://www.amazon.com"

// AmazonSource searches Amazon's result pages. Its selector set maps one
// fragile, Amazon-shaped HTML layout to the common product record; a
// markup change here cannot affect any other source.
type AmazonSource struct {
	deps interfaces.Dependencies
	opts Options
	base *url.URL
}

// NewAmazonSource creates a new Amazon source adapter
func NewAmazonSource(deps interfaces.Dependencies, opts Options) *AmazonSource {
	base, _ := url.Parse(amazonBaseURL)
	return &AmazonSource{
		deps: deps,
		opts: opts.withDefaults(),
		base: base,
	}
}

// Store returns the fixed store label for this adapter
func (s *AmazonSource) Store() string {
	return domain.StoreAmazon
}

// Search fetches Amazon's search results for the query. Any failure is
// logged and yields an empty slice; it never propagates to the caller.
func (s *AmazonSource) Search(ctx context.Context, query string) []domain.Product {
	searchURL := amazonBaseURL + "/s?k=" + url.QueryEscape(query)

	body, err := fetch(ctx, s.deps.HTTPClient, s.Store(), searchURL, s.opts.Timeout)
	if err != nil {
		logWarn(s.deps.Logger, "Amazon fetch failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}
	defer body.Close()

	products, err := s.parse(body)
	if err != nil {
		logWarn(s.deps.Logger, "Amazon markup parse failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}

	return products
}

// parse extracts up to MaxResults candidate result blocks from an Amazon
// search page. Blocks missing a name or price container are skipped, not
// treated as failures.
func (s *AmazonSource) parse(body io.Reader) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}

	doc.Find(`[data-component-type="s-search-result"]`).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		nameElem := item.Find("h2").First()
		priceElem := item.Find(".a-price-whole").First()
		if nameElem.Length() == 0 || priceElem.Length() == 0 {
			return true
		}

		name := strings.TrimSpace(nameElem.Text())
		if name == "" {
			return true
		}

		product := domain.Product{
			Name:         name,
			Price:        pricing.ParsePrice(strings.TrimSpace(priceElem.Text())),
			Store:        domain.StoreAmazon,
			Availability: "In Stock",
		}

		if href, ok := nameElem.Find("a").First().Attr("href"); ok {
			product.URL = resolveLink(s.base, href)
		}
		if src, ok := item.Find("img.s-image").First().Attr("src"); ok {
			product.ImageURL = resolveLink(s.base, src)
		}
		if ratingText := item.Find("span.a-icon-alt").First().Text(); ratingText != "" {
			product.Rating = pricing.ParseRating(ratingText)
		}

		products = append(products, product)
		return len(products) < s.opts.MaxResults
	})

	return products, nil
}
