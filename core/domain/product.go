// ABOUTME: Product domain model represents one storefront listing for a searched item
// ABOUTME: Provides validation helpers used by ranking and persistence

package domain

import (
	"strings"
	"time"
)

// Store labels identify which source adapter produced a record.
const (
	StoreAmazon = "Amazon"
	StoreEBay   = "eBay"
)

// Product represents a single listing extracted from one storefront's
// search results. Instances are value records and are never mutated
// after construction.
type Product struct {
	// Name is the listing's display title as extracted from the page
	Name string

	// Price is the parsed price. 0 means the price could not be parsed;
	// such entries are excluded from ranking but still persisted.
	Price float64

	// URL is the absolute link to the listing, may be empty
	URL string

	// Store identifies the source adapter ("Amazon", "eBay", ...)
	Store string

	// Availability is the source's free-text stock status
	Availability string

	// ImageURL is an optional absolute image URL
	ImageURL string

	// Rating is the source-native rating, nil when the source had none
	Rating *float64
}

// HasPrice reports whether the product carries a parseable, rankable price.
func (p Product) HasPrice() bool {
	return p.Price > 0
}

// DisplayName returns the name truncated to max runes for presentation.
// Truncation is a display concern only; stored records keep the full name.
func (p Product) DisplayName(max int) string {
	runes := []rune(strings.TrimSpace(p.Name))
	if max <= 0 || len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}

// HistoryEntry is one row of the recent-history view, newest first.
type HistoryEntry struct {
	Query     string
	Store     string
	Price     float64
	Timestamp time.Time
}
