// ABOUTME: Search service fans a query out to every storefront adapter and ranks the merge
// ABOUTME: Provides the single RunSearch entry point used by all surrounding layers

package search

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	coreerrors "github.com/404PageFinder/BestPrice-Checker/core/errors"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
)

// persistTimeout bounds the background history write. It is independent
// of the request context so a caller disconnect cannot abort the write.
const persistTimeout = 5 * time.Second

// Result is the outcome of one search across all configured sources.
type Result struct {
	// Results holds every priced product, sorted ascending by price.
	// Ties keep adapter registration order, so identical inputs always
	// produce identical ordering.
	Results []domain.Product

	// BestDeal is the cheapest priced product, nil when nothing priced
	// was found. An empty result set is a normal outcome, not an error.
	BestDeal *domain.Product
}

// SearchService aggregates results from all configured source adapters.
// Adapters are independent and I/O bound; each search runs them fully in
// parallel and waits for all of them, so a slow-but-healthy source is
// never dropped.
type SearchService struct {
	deps     interfaces.Dependencies
	adapters []interfaces.SourceAdapter
	history  interfaces.HistoryStore

	persistWG sync.WaitGroup
}

// NewSearchService creates a new search service over the given adapters.
// Adapter order is significant: it is the tie-break order for equal prices.
func NewSearchService(deps interfaces.Dependencies, adapters ...interfaces.SourceAdapter) *SearchService {
	return &SearchService{
		deps:     deps,
		adapters: adapters,
	}
}

// SetHistoryStore sets the history collaborator. Without one, searches
// still run; they are just not recorded.
func (s *SearchService) SetHistoryStore(store interfaces.HistoryStore) {
	s.history = store
}

// validateQuery rejects blank queries before any fetch is attempted.
func (s *SearchService) validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &coreerrors.ValidationError{
			Field:   "query",
			Message: "search query cannot be empty",
		}
	}
	return nil
}

// RunSearch dispatches the query to every adapter concurrently, merges
// their outputs, filters unpriced entries, and sorts ascending by price.
// The unfiltered merge, zero-price entries included, is persisted to the
// history store in the background so "found but unpriced" results are
// not lost from history. Only an invalid query returns an error.
func (s *SearchService) RunSearch(ctx context.Context, query string) (*Result, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	// One slot per adapter: each goroutine writes only its own slot, so
	// the merge needs no locking and keeps registration order.
	perAdapter := make([][]domain.Product, len(s.adapters))

	var wg sync.WaitGroup
	for i, adapter := range s.adapters {
		wg.Add(1)
		go func(idx int, src interfaces.SourceAdapter) {
			defer wg.Done()
			perAdapter[idx] = src.Search(ctx, query)
		}(i, adapter)
	}
	wg.Wait()

	merged := []domain.Product{}
	for _, products := range perAdapter {
		merged = append(merged, products...)
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("search completed", map[string]interface{}{
			"query":   query,
			"sources": len(s.adapters),
			"found":   len(merged),
		})
	}

	s.persistAsync(query, merged)

	ranked := []domain.Product{}
	for _, p := range merged {
		if p.HasPrice() {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})

	result := &Result{Results: ranked}
	if len(ranked) > 0 {
		result.BestDeal = &ranked[0]
	}

	return result, nil
}

// persistAsync records the search without blocking the response path.
// Persistence failures are logged and never reach the caller.
func (s *SearchService) persistAsync(query string, products []domain.Product) {
	if s.history == nil {
		return
	}

	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)

	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		recordID, err := s.history.CreateSearchRecord(ctx, query)
		if err != nil {
			s.logPersistFailure(query, err)
			return
		}

		if err := s.history.AppendSnapshots(ctx, recordID, snapshot); err != nil {
			s.logPersistFailure(query, err)
		}
	}()
}

func (s *SearchService) logPersistFailure(query string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error("search history write failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}
}

// Close waits for in-flight history writes to finish. Call it on
// shutdown so background persists are not cut off mid-write.
func (s *SearchService) Close() {
	s.persistWG.Wait()
}
