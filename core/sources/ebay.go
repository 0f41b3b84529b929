// ABOUTME: eBay source adapter extracting listings from eBay search result markup
// ABOUTME: Selector set is eBay-specific and isolated from every other source

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

const ebayBaseURL = "https://www.ebay.com"

// EbaySource searches eBay's result pages.
type EbaySource struct {
	deps interfaces.Dependencies
	opts Options
	base *url.URL
}

// NewEbaySource creates a new eBay source adapter
func NewEbaySource(deps interfaces.Dependencies, opts Options) *EbaySource {
	base, _ := url.Parse(ebayBaseURL)
	return &EbaySource{
		deps: deps,
		opts: opts.withDefaults(),
		base: base,
	}
}

// Store returns the fixed store label for this adapter
func (s *EbaySource) Store() string {
	return domain.StoreEBay
}

// Search fetches eBay's search results for the query. Any failure is
// logged and yields an empty slice; it never propagates to the caller.
func (s *EbaySource) Search(ctx context.Context, query string) []domain.Product {
	searchURL := ebayBaseURL + "/sch/i.html?_nkw=" + url.QueryEscape(query)

	body, err := fetch(ctx, s.deps.HTTPClient, s.Store(), searchURL, s.opts.Timeout)
	if err != nil {
		logWarn(s.deps.Logger, "eBay fetch failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}
	defer body.Close()

	products, err := s.parse(body)
	if err != nil {
		logWarn(s.deps.Logger, "eBay markup parse failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Product{}
	}

	return products
}

// parse extracts up to MaxResults candidate result blocks from an eBay
// search page. Blocks missing a title or price container are skipped.
func (s *EbaySource) parse(body io.Reader) ([]domain.Product, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}

	doc.Find(".s-item__info").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		nameElem := item.Find(".s-item__title").First()
		priceElem := item.Find(".s-item__price").First()
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
			Store:        domain.StoreEBay,
			Availability: "Available",
		}

		if href, ok := item.Find("a").First().Attr("href"); ok {
			product.URL = resolveLink(s.base, href)
		}

		products = append(products, product)
		return len(products) < s.opts.MaxResults
	})

	return products, nil
}
