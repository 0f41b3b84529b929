// ABOUTME: Search handler exposing the product search pipeline over HTTP
// ABOUTME: Thin delivery layer; all pipeline logic lives in the core search service

package handlers

import (
	"context"
	"net/http"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/404PageFinder/BestPrice-Checker/core/search"
	"github.com/danielgtaylor/huma/v2"
)

// displayNameLimit bounds product names in API responses. Stored
// snapshots always keep the full name.
const displayNameLimit = 50

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	RunSearch(ctx context.Context, query string) (*search.Result, error)
}

// SearchHandler handles product search requests
type SearchHandler struct {
	searchService SearchService
	imageEnricher interfaces.ImageEnricher
}

// NewSearchHandler creates a new search handler. The image enricher is
// optional; without one, products keep whatever image the source page had.
func NewSearchHandler(searchService SearchService, imageEnricher interfaces.ImageEnricher) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		imageEnricher: imageEnricher,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchProducts",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search a product across storefronts",
		Description: "Queries every configured storefront concurrently and returns priced results sorted ascending by price",
		Tags:        []string{"Search"},
	}, h.SearchProducts)
}

// SearchProductsInput defines the input for the search operation
type SearchProductsInput struct {
	Body struct {
		Query string `json:"query" doc:"Product name to search for"`
	}
}

// ProductResponse is one storefront listing in a search response
type ProductResponse struct {
	Name         string   `json:"name" doc:"Listing title, truncated for display"`
	Price        float64  `json:"price" doc:"Parsed price"`
	URL          string   `json:"url,omitempty" doc:"Link to the listing"`
	Store        string   `json:"store" doc:"Storefront that produced the listing"`
	Availability string   `json:"availability,omitempty" doc:"Source stock status text"`
	ImageURL     string   `json:"imageUrl,omitempty" doc:"Product image URL"`
	Rating       *float64 `json:"rating,omitempty" doc:"Source-native rating"`
}

// SearchProductsOutput defines the output for the search operation
type SearchProductsOutput struct {
	Body struct {
		Results  []ProductResponse `json:"results" doc:"Priced results sorted ascending by price"`
		BestDeal *ProductResponse  `json:"bestDeal,omitempty" doc:"Cheapest result across all storefronts"`
	}
}

// SearchProducts handles the POST /search endpoint
func (h *SearchHandler) SearchProducts(ctx context.Context, input *SearchProductsInput) (*SearchProductsOutput, error) {
	result, err := h.searchService.RunSearch(ctx, input.Body.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	products := result.Results
	if h.imageEnricher != nil {
		products = h.imageEnricher.EnrichImages(ctx, products)
	}

	output := &SearchProductsOutput{}
	output.Body.Results = make([]ProductResponse, 0, len(products))
	for _, p := range products {
		output.Body.Results = append(output.Body.Results, toProductResponse(p))
	}

	// Results are sorted ascending, so the best deal is the first entry.
	// Taking it from the mapped slice keeps enriched fields consistent
	// between bestDeal and results[0].
	if result.BestDeal != nil && len(output.Body.Results) > 0 {
		best := output.Body.Results[0]
		output.Body.BestDeal = &best
	}

	return output, nil
}

// toProductResponse maps a domain product to its API representation
func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		Name:         p.DisplayName(displayNameLimit),
		Price:        p.Price,
		URL:          p.URL,
		Store:        p.Store,
		Availability: p.Availability,
		ImageURL:     p.ImageURL,
		Rating:       p.Rating,
	}
}
