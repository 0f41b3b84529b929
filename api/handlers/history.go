// ABOUTME: History handler exposing recent search history over HTTP
// ABOUTME: Reads the append-only snapshot log, newest first

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// HistoryHandler handles search history requests
type HistoryHandler struct {
	store interfaces.HistoryStore
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store interfaces.HistoryStore) *HistoryHandler {
	return &HistoryHandler{
		store: store,
	}
}

// RegisterRoutes registers history routes
func (h *HistoryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recentHistory",
		Method:      http.MethodGet,
		Path:        "/history",
		Summary:     "List recent price snapshots",
		Description: "Returns the most recent price snapshots across all searches, newest first",
		Tags:        []string{"History"},
	}, h.RecentHistory)
}

// RecentHistoryInput defines the input for the history operation
type RecentHistoryInput struct {
	Limit int `query:"limit" default:"50" minimum:"1" maximum:"500" doc:"Maximum number of snapshots to return"`
}

// HistoryEntryResponse is one snapshot row in a history response
type HistoryEntryResponse struct {
	Query     string    `json:"query" doc:"Search query that produced the snapshot"`
	Store     string    `json:"store" doc:"Storefront the snapshot came from"`
	Price     float64   `json:"price" doc:"Price at snapshot time"`
	Timestamp time.Time `json:"timestamp" doc:"When the snapshot was taken"`
}

// RecentHistoryOutput defines the output for the history operation
type RecentHistoryOutput struct {
	Body struct {
		Entries []HistoryEntryResponse `json:"entries" doc:"Snapshots, newest first"`
	}
}

// RecentHistory handles the GET /history endpoint
func (h *HistoryHandler) RecentHistory(ctx context.Context, input *RecentHistoryInput) (*RecentHistoryOutput, error) {
	entries, err := h.store.RecentHistory(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to read history", err)
	}

	output := &RecentHistoryOutput{}
	output.Body.Entries = make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		output.Body.Entries = append(output.Body.Entries, HistoryEntryResponse{
			Query:     entry.Query,
			Store:     entry.Store,
			Price:     entry.Price,
			Timestamp: entry.Timestamp,
		})
	}

	return output, nil
}
