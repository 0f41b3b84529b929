package handlers

import (
	"context"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	"github.com/404PageFinder/BestPrice-Checker/core/search"
)

// mockSearchService is a mock implementation of the SearchService interface
type mockSearchService struct {
	runSearchFunc func(ctx context.Context, query string) (*search.Result, error)
}

func (m *mockSearchService) RunSearch(ctx context.Context, query string) (*search.Result, error) {
	if m.runSearchFunc != nil {
		return m.runSearchFunc(ctx, query)
	}
	return &search.Result{Results: []domain.Product{}}, nil
}

// mockImageEnricher is a mock implementation of the ImageEnricher interface
type mockImageEnricher struct {
	enrichFunc func(ctx context.Context, products []domain.Product) []domain.Product
}

func (m *mockImageEnricher) EnrichImages(ctx context.Context, products []domain.Product) []domain.Product {
	if m.enrichFunc != nil {
		return m.enrichFunc(ctx, products)
	}
	return products
}

// mockHistoryStore is a mock implementation of the HistoryStore interface
type mockHistoryStore struct {
	recentFunc func(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

func (m *mockHistoryStore) CreateSearchRecord(ctx context.Context, query string) (int64, error) {
	return 1, nil
}

func (m *mockHistoryStore) AppendSnapshots(ctx context.Context, recordID int64, products []domain.Product) error {
	return nil
}

func (m *mockHistoryStore) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, limit)
	}
	return []domain.HistoryEntry{}, nil
}
