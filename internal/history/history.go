package history

import (
	"context"
	"time"
)

// Entry is one recorded product search.
type Entry struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	SearchedAt  time.Time `json:"searched_at"`
}

// Store persists search history. Persistence is a collaborator of the
// pipeline, not part of it; SQLiteStore is the shipped reference
// implementation.
type Store interface {
	RecordSearch(ctx context.Context, entry Entry) error
	RecentSearches(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}
