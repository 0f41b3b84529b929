// ABOUTME: Storage interfaces for persisting search history
// ABOUTME: Defines the contract for the history collaborator used by the search pipeline

package interfaces

import (
	"context"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
)

// HistoryStore defines the interface for persisting searches and their
// price snapshots. Records are append-only: the pipeline creates a search
// record, appends one snapshot per product, and never updates or deletes
// either afterwards.
type HistoryStore interface {
	// CreateSearchRecord persists a new search and returns its record ID.
	CreateSearchRecord(ctx context.Context, query string) (int64, error)

	// AppendSnapshots stores one price snapshot per product under the
	// given search record. The product list is the unfiltered
	// concatenation, zero-price entries included.
	AppendSnapshots(ctx context.Context, recordID int64, products []domain.Product) error

	// RecentHistory returns up to limit snapshot rows joined with their
	// search records, newest first.
	RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}
