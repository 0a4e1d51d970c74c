package testutil_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsolberg/travelmate/internal/store"
	"github.com/hsolberg/travelmate/migrations"
)

// TestMigrations verifies the full migration round-trip against a throwaway
// SQLite file:
//
//  1. Apply all migrations (goose up).
//  2. Assert the collections table exists.
//  3. Roll back all migrations (goose down-to 0).
//  4. Assert the table has been removed.
func TestMigrations(t *testing.T) {
	kv, err := store.Open(filepath.Join(t.TempDir(), "migrations.db"))
	require.NoError(t, err, "open store")
	t.Cleanup(func() { kv.Close() })

	provider, err := goose.NewProvider(goose.DialectSQLite3, kv.DB(), migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.NotEmpty(t, results, "expected at least one migration to be applied")

	assertTablePresence(t, kv.DB(), "collections", true)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	assertTablePresence(t, kv.DB(), "collections", false)
}

func assertTablePresence(t *testing.T, db *sql.DB, table string, shouldExist bool) {
	t.Helper()

	// sqlite_master is SQLite's catalog of schema objects.
	const q = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	var count int
	err := db.QueryRowContext(context.Background(), q, table).Scan(&count)
	require.NoError(t, err, "check table existence for %q", table)

	if shouldExist {
		assert.Equal(t, 1, count, "expected table %q to exist", table)
	} else {
		assert.Equal(t, 0, count, "expected table %q to not exist", table)
	}
}
