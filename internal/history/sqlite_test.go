package history

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestRecordAndListSearches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Query: "blue jacket", ResultCount: 3, SearchedAt: base},
		{Query: "red dress", ResultCount: 5, SearchedAt: base.Add(time.Minute)},
		{Query: "sneakers", ResultCount: 0, SearchedAt: base.Add(2 * time.Minute)},
	}

	for _, entry := range entries {
		if err := store.RecordSearch(ctx, entry); err != nil {
			t.Fatalf("RecordSearch error: %v", err)
		}
	}

	recent, err := store.RecentSearches(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSearches error: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}

	// Newest first.
	if recent[0].Query != "sneakers" || recent[2].Query != "blue jacket" {
		t.Errorf("unexpected ordering: %+v", recent)
	}

	for _, entry := range recent {
		if entry.ID == "" {
			t.Errorf("expected generated id for entry %+v", entry)
		}
	}
}

func TestRecentSearchesLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entry := Entry{Query: "query", ResultCount: i, SearchedAt: base.Add(time.Duration(i) * time.Second)}
		if err := store.RecordSearch(ctx, entry); err != nil {
			t.Fatalf("RecordSearch error: %v", err)
		}
	}

	recent, err := store.RecentSearches(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSearches error: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries, got %d", len(recent))
	}
}

func TestRecentSearchesEmpty(t *testing.T) {
	store := newTestStore(t)

	recent, err := store.RecentSearches(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentSearches error: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no entries, got %d", len(recent))
	}
}
