// Package testutil provides shared helpers for tests that need a real
// store. The database is an embedded SQLite file in the test's temp
// directory, so no environment setup is required and tests never touch
// each other's data.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/hsolberg/travelmate/internal/store"
	"github.com/hsolberg/travelmate/migrations"
)

// NewKV opens a migrated SQLite store backed by a throwaway file under
// t.TempDir(). The store is closed automatically when the test (and all its
// subtests) finish.
func NewKV(t *testing.T) *store.SQLite {
	t.Helper()

	kv, err := store.Open(filepath.Join(t.TempDir(), "travelmate.db"))
	if err != nil {
		t.Fatalf("testutil.NewKV: open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	Migrate(t, kv.DB())
	return kv
}

// Migrate applies all migrations to db, failing the test on any error.
func Migrate(t *testing.T, db *sql.DB) {
	t.Helper()

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testutil.Migrate: create provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.Migrate: goose up: %v", err)
	}
}
