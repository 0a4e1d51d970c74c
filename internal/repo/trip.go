// Package repo contains all persistence access for the TravelMate API.
// Each resource has its own file with an interface and a store-backed
// implementation. No business logic lives here — only collection reads,
// writes, and owner scoping.
package repo

import (
	"context"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/store"
)

// TripRepo defines the persistence operations for Trips. All operations
// require an owner id; an empty owner id means "logged out" and degrades to
// a silent no-op (empty list, ignored save/delete) rather than an error.
//
// The service layer depends on this interface, not the concrete store
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// List returns all trips owned by ownerID in stored order
	// (most recently saved first, since saves prepend new records).
	List(ctx context.Context, ownerID string) ([]domain.Trip, error)

	// Get returns the trip only when both id and owner match.
	// Cross-owner lookups return domain.ErrNotFound, never another
	// user's trip.
	Get(ctx context.Context, ownerID, tripID string) (domain.Trip, error)

	// Save upserts by trip id: an existing record for that owner is
	// replaced in place, a new one is prepended. The owner id is always
	// stamped from the caller's session, overriding whatever the record
	// carried, so ownership cannot be tampered with.
	Save(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error)

	// Delete removes the matching record. Deleting an absent trip is a
	// no-op, not an error.
	Delete(ctx context.Context, ownerID, tripID string) error
}

// kvTripRepo is the keyed-collection implementation of TripRepo. All trips
// across all users live in one collection and are filtered by owner on read,
// matching the original client's single localStorage key.
type kvTripRepo struct {
	kv store.KV
}

// NewTripRepo constructs a TripRepo backed by the provided store.
func NewTripRepo(kv store.KV) TripRepo {
	return &kvTripRepo{kv: kv}
}

func (r *kvTripRepo) List(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	if ownerID == "" {
		return []domain.Trip{}, nil
	}

	trips := []domain.Trip{}
	for _, t := range store.ReadCollection[domain.Trip](ctx, r.kv, store.TripsKey) {
		if t.OwnerID == ownerID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (r *kvTripRepo) Get(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	if ownerID == "" {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", domain.ErrNotFound)
	}

	for _, t := range store.ReadCollection[domain.Trip](ctx, r.kv, store.TripsKey) {
		if t.ID == tripID && t.OwnerID == ownerID {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", domain.ErrNotFound)
}

func (r *kvTripRepo) Save(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error) {
	if ownerID == "" {
		// Nothing to do when logged out.
		return trip, nil
	}

	trip.OwnerID = ownerID
	trip.UpdatedAt = domain.Now()
	if trip.CreatedAt == "" {
		trip.CreatedAt = trip.UpdatedAt
	}

	all := store.ReadCollection[domain.Trip](ctx, r.kv, store.TripsKey)
	replaced := false
	for i, t := range all {
		if t.ID == trip.ID && t.OwnerID == ownerID {
			all[i] = trip
			replaced = true
			break
		}
	}
	if !replaced {
		all = append([]domain.Trip{trip}, all...)
	}

	if err := store.WriteCollection(ctx, r.kv, store.TripsKey, all); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return trip, nil
}

func (r *kvTripRepo) Delete(ctx context.Context, ownerID, tripID string) error {
	if ownerID == "" {
		return nil
	}

	all := store.ReadCollection[domain.Trip](ctx, r.kv, store.TripsKey)
	kept := all[:0]
	removed := false
	for _, t := range all {
		if t.ID == tripID && t.OwnerID == ownerID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return nil
	}

	if err := store.WriteCollection(ctx, r.kv, store.TripsKey, kept); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}
