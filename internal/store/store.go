// Package store implements the durable keyed-collection store the trip and
// user repositories persist through. Each key addresses one whole JSON
// collection ("all trips", "all users", "all sessions"); reads and writes
// always move the entire collection, mirroring the localStorage contract of
// the original client.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
)

// Collection keys. Kept identical to the original client's localStorage keys
// so an imported browser dump is readable as-is.
const (
	TripsKey    = "travelmate_saved_trips"
	UsersKey    = "travelmate_users"
	SessionsKey = "travelmate_sessions"
)

// KV is the raw string-addressed storage medium. Implementations return
// (nil, nil) from ReadAll when the key is absent; they do not interpret the
// stored bytes. The JSON boundary lives in ReadCollection/WriteCollection.
type KV interface {
	// ReadAll returns the raw bytes stored under key, or nil if absent.
	ReadAll(ctx context.Context, key string) ([]byte, error)

	// WriteAll replaces the bytes stored under key in a single write.
	WriteAll(ctx context.Context, key string, raw []byte) error

	// Delete removes the key entirely. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// ReadCollection loads and decodes the collection stored under key.
// Absent, unreadable, or corrupt data all degrade to an empty slice — a
// malformed stored collection is never an error, per the storage contract.
func ReadCollection[T any](ctx context.Context, kv KV, key string) []T {
	raw, err := kv.ReadAll(ctx, key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

// WriteCollection encodes records and replaces the collection stored under
// key. Failures wrap domain.ErrStorageWrite so callers can surface a
// transient warning without inspecting driver errors.
func WriteCollection[T any](ctx context.Context, kv KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store.WriteCollection %s: %w: %v", key, domain.ErrStorageWrite, err)
	}
	if err := kv.WriteAll(ctx, key, raw); err != nil {
		return fmt.Errorf("store.WriteCollection %s: %w: %v", key, domain.ErrStorageWrite, err)
	}
	return nil
}
