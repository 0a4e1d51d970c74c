package service

import (
	"context"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/repo"
)

// Seeder populates a brand-new account with one example trip so the first
// screen is never empty.
type Seeder struct {
	trips repo.TripRepo
}

// NewSeeder constructs a Seeder backed by the provided TripRepo.
func NewSeeder(trips repo.TripRepo) *Seeder {
	return &Seeder{trips: trips}
}

// SeedIfEmpty creates the example trip for the owner unless they already
// have at least one trip. Idempotent per owner — safe to call on every
// sign-in.
func (s *Seeder) SeedIfEmpty(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return nil
	}

	existing, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("service.Seeder.SeedIfEmpty: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if _, err := s.trips.Save(ctx, ownerID, demoTrip()); err != nil {
		return fmt.Errorf("service.Seeder.SeedIfEmpty: %w", err)
	}
	return nil
}

// demoTrip builds the fixed three-day Tokyo example. Fresh ids every call,
// fixed content otherwise.
func demoTrip() domain.Trip {
	day := func(title string, items ...domain.Activity) domain.Day {
		return domain.Day{ID: domain.NewID(), Title: title, Items: items}
	}
	activity := func(timeOfDay, title, notes string) domain.Activity {
		return domain.Activity{ID: domain.NewID(), Time: timeOfDay, Title: title, Notes: notes}
	}

	return domain.Trip{
		ID:              domain.NewID(),
		DestinationName: "Tokyo",
		CountryCode:     "JP",
		StartDate:       "2025-04-02",
		EndDate:         "2025-04-04",
		CreatedAt:       domain.Now(),
		Itinerary: []domain.Day{
			day("Day 1",
				activity("09:00", "Arrive at Narita Airport", "Pick up rail pass at the airport counter"),
				activity("15:00", "Check in at Shinjuku hotel", ""),
				activity("19:00", "Evening walk in Shibuya", "Crossing is best after dark"),
			),
			day("Day 2",
				activity("09:30", "Senso-ji Temple", "Go early to beat the crowds"),
				activity("12:30", "Lunch in Asakusa", ""),
				activity("15:00", "Tokyo Skytree", "Book tickets ahead"),
			),
			day("Day 3",
				activity("08:30", "Day trip to Kamakura", "About an hour by train"),
				activity("11:00", "Great Buddha of Kamakura", ""),
				activity("17:00", "Shopping in Ginza", ""),
			),
		},
	}
}
