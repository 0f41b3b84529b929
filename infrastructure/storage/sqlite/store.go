// ABOUTME: SQLite-backed history store persisting searches and price snapshots
// ABOUTME: Append-only: records and snapshots are created once and never mutated

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/404PageFinder/BestPrice-Checker/core/domain"
	_ "github.com/mattn/go-sqlite3"
)

const defaultHistoryLimit = 50

// Store implements the HistoryStore interface using SQLite
type Store struct {
	db           *sql.DB
	filePath     string
	defaultLimit int
}

// NewStore opens (or creates) the history database at filePath and
// initializes the schema. defaultLimit bounds RecentHistory reads when
// callers pass none; non-positive values select the built-in default.
func NewStore(filePath string, defaultLimit int) (*Store, error) {
	if filePath == "" {
		filePath = "price_history.db"
	}
	if defaultLimit <= 0 {
		defaultLimit = defaultHistoryLimit
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:           db,
		filePath:     filePath,
		defaultLimit: defaultLimit,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the history tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			search_id INTEGER,
			store TEXT NOT NULL,
			price REAL NOT NULL,
			url TEXT NOT NULL,
			availability TEXT,
			rating REAL,
			timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (search_id) REFERENCES searches (id)
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_search ON snapshots(search_id);
		CREATE INDEX IF NOT EXISTS idx_snapshots_timestamp ON snapshots(timestamp);
	`

	_, err := s.db.Exec(query)
	return err
}

// CreateSearchRecord persists a new search and returns its record ID
func (s *Store) CreateSearchRecord(ctx context.Context, query string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO searches (query) VALUES (?)", query)
	if err != nil {
		return 0, fmt.Errorf("failed to create search record: %w", err)
	}

	return result.LastInsertId()
}

// AppendSnapshots stores one snapshot row per product under the given
// search record. The whole batch is written in one transaction.
func (s *Store) AppendSnapshots(ctx context.Context, recordID int64, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshots (search_id, store, price, url, availability, rating)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		var rating sql.NullFloat64
		if p.Rating != nil {
			rating = sql.NullFloat64{Float64: *p.Rating, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, recordID, p.Store, p.Price, p.URL, p.Availability, rating); err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
	}

	return tx.Commit()
}

// RecentHistory returns up to limit snapshot rows joined with their
// searches, newest first. A non-positive limit selects the store's
// configured default.
func (s *Store) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT searches.query, snapshots.store, snapshots.price, snapshots.timestamp
		FROM snapshots
		JOIN searches ON searches.id = snapshots.search_id
		ORDER BY snapshots.timestamp DESC, snapshots.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.Query, &entry.Store, &entry.Price, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
