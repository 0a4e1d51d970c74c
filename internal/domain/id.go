package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns a collision-resistant opaque identifier for trips, days,
// activities, users, and session tokens.
//
// It prefers a V4 UUID from the crypto random source. If entropy is
// exhausted it falls back to a timestamp plus pseudo-random suffix, which
// keeps IDs unique within a running process — the same fallback the
// original client used when crypto.randomUUID was unavailable.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%d-%08x", time.Now().UnixNano(), rand.Uint32())
	}
	return id.String()
}

// Now returns the current UTC time as an RFC 3339 string, the format used
// for all createdAt/updatedAt stamps.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
