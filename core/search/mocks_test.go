package search

import (
	"context"
	"sync"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
)

// mockAdapter is a mock implementation of the SourceAdapter interface
type mockAdapter struct {
	store      string
	products   []domain.Product
	searchFunc func(ctx context.Context, query string) []domain.Product
}

func (m *mockAdapter) Store() string {
	return m.store
}

func (m *mockAdapter) Search(ctx context.Context, query string) []domain.Product {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return m.products
}

// mockHistoryStore is a mock implementation of the HistoryStore interface
type mockHistoryStore struct {
	mu         sync.Mutex
	queries    []string
	snapshots  map[int64][]domain.Product
	createFunc func(ctx context.Context, query string) (int64, error)
	appendFunc func(ctx context.Context, recordID int64, products []domain.Product) error
}

func newMockHistoryStore() *mockHistoryStore {
	return &mockHistoryStore{
		snapshots: make(map[int64][]domain.Product),
	}
}

func (m *mockHistoryStore) CreateSearchRecord(ctx context.Context, query string) (int64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, query)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	return int64(len(m.queries)), nil
}

func (m *mockHistoryStore) AppendSnapshots(ctx context.Context, recordID int64, products []domain.Product) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, recordID, products)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[recordID] = products
	return nil
}

func (m *mockHistoryStore) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return nil, nil
}

func (m *mockHistoryStore) persisted(recordID int64) []domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots[recordID]
}

// mockLogger records log calls for assertions
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (l *mockLogger) Error(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *mockLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

// slowAdapter returns its products after a delay
func slowAdapter(store string, delay time.Duration, products []domain.Product) *mockAdapter {
	return &mockAdapter{
		store: store,
		searchFunc: func(ctx context.Context, query string) []domain.Product {
			time.Sleep(delay)
			return products
		},
	}
}
