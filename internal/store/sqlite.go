package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

// SQLite is the production KV: a single-file embedded database holding one
// row per collection key. A file on the user's machine is the closest server
// equivalent of the browser storage the original client used — no daemon,
// survives restarts, last writer wins.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database file at path.
// The collections table is created by the goose migrations; run them before
// calling ReadAll/WriteAll.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	// A single writer matches the whole-collection write model and avoids
	// SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: ping: %w", err)
	}
	return &SQLite{db: db}, nil
}

// DB exposes the underlying handle for migration bootstrap.
func (s *SQLite) DB() *sql.DB { return s.db }

// Close closes the database file.
func (s *SQLite) Close() error { return s.db.Close() }

// ReadAll returns the raw collection bytes stored under key, or nil if the
// key has never been written.
func (s *SQLite) ReadAll(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM collections WHERE key = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.SQLite.ReadAll: %w", err)
	}
	return value, nil
}

// WriteAll replaces the collection stored under key in a single statement.
func (s *SQLite) WriteAll(ctx context.Context, key string, raw []byte) error {
	const q = `
		INSERT INTO collections (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, q, key, raw); err != nil {
		return fmt.Errorf("store.SQLite.WriteAll: %w", err)
	}
	return nil
}

// Delete removes the key. Absent keys are a no-op.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM collections WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("store.SQLite.Delete: %w", err)
	}
	return nil
}
