// ABOUTME: Source adapter interface for storefront search implementations
// ABOUTME: One implementation per storefront; adding a store means adding an implementation

package interfaces

import (
	"context"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
)

// SourceAdapter is implemented once per storefront. Search never returns
// an error to the caller: any failure (network, non-2xx status, markup
// mismatch) is logged inside the adapter and yields an empty slice, so
// one source's unavailability cannot fail the whole query.
type SourceAdapter interface {
	// Store returns the fixed label stamped on every product this
	// adapter produces.
	Store() string

	// Search fetches the storefront's result page for the query and
	// extracts up to a small fixed number of candidate listings.
	Search(ctx context.Context, query string) []domain.Product
}
