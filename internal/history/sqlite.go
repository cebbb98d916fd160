package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	conn *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{conn: conn}
	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS search_history (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		result_count INTEGER NOT NULL,
		searched_at DATETIME NOT NULL
	);
	`

	_, err := s.conn.Exec(query)
	return err
}

func (s *SQLiteStore) RecordSearch(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SearchedAt.IsZero() {
		entry.SearchedAt = time.Now()
	}

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO search_history (id, query, result_count, searched_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Query, entry.ResultCount, entry.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to insert search entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RecentSearches(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, query, result_count, searched_at FROM search_history ORDER BY searched_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.ResultCount, &entry.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
