// ABOUTME: Service interfaces consumed by the delivery layer
// ABOUTME: Keeps handlers decoupled from concrete service implementations

package interfaces

import (
	"context"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
)

// ImageEnricher backfills missing product images from the listing pages.
// Enrichment is best effort: failures leave products unchanged.
type ImageEnricher interface {
	// EnrichImages returns a copy of products where entries without an
	// ImageURL have one filled in when the listing page exposes an
	// Open Graph image. Order and all other fields are preserved.
	EnrichImages(ctx context.Context, products []domain.Product) []domain.Product
}
