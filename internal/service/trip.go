// Package service contains the business logic for the TravelMate API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// itinerary-engine calls. No storage access lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/itinerary"
	"github.com/hsolberg/travelmate/internal/repo"
)

// TripService implements business logic for trips and their itineraries.
// Every itinerary operation loads the trip, applies a pure engine
// transformation, and persists the result — the HTTP request is the
// explicit save.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// List returns all trips for the owner, most recently saved first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Get loads a single trip and normalizes its itinerary shape, so the caller
// always receives well-formed days regardless of what was stored.
func (s *TripService) Get(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	trip, err := s.trips.Get(ctx, ownerID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	trip.Itinerary = itinerary.Normalize(trip.Itinerary)
	return trip, nil
}

// Plan creates a new trip from a destination search result: empty date
// range, a single "Day 1", and a fresh id.
func (s *TripService) Plan(ctx context.Context, ownerID, destinationName, countryCode string) (domain.Trip, error) {
	name := strings.TrimSpace(destinationName)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
	}

	trip := domain.Trip{
		ID:              domain.NewID(),
		DestinationName: name,
		CountryCode:     strings.TrimSpace(countryCode),
		Itinerary:       itinerary.Normalize(nil),
		CreatedAt:       domain.Now(),
	}

	saved, err := s.trips.Save(ctx, ownerID, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Plan: %w", err)
	}
	return saved, nil
}

// Save persists the caller's working draft, upserting by trip id.
// The itinerary shape is normalized on the way in so nothing malformed is
// ever written back.
func (s *TripService) Save(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.DestinationName) == "" {
		return domain.Trip{}, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
	}

	trip.Itinerary = itinerary.Normalize(trip.Itinerary)
	saved, err := s.trips.Save(ctx, ownerID, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	return saved, nil
}

// Delete removes a trip permanently. Deleting an absent trip is a no-op.
func (s *TripService) Delete(ctx context.Context, ownerID, tripID string) error {
	if err := s.trips.Delete(ctx, ownerID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Preview derives the presentation keys for a trip's destination.
func (s *TripService) Preview(ctx context.Context, ownerID, tripID string) (domain.TripPreview, error) {
	trip, err := s.trips.Get(ctx, ownerID, tripID)
	if err != nil {
		return domain.TripPreview{}, fmt.Errorf("service.TripService.Preview: %w", err)
	}

	preview := domain.TripPreview{
		HeroKey:    itinerary.HeroKey(trip),
		LookupCode: itinerary.LookupCode(trip),
	}
	preview.GalleryKey, preview.HasGallery = itinerary.GalleryKey(trip)
	return preview, nil
}

// AddDay appends one new day to the trip's itinerary.
func (s *TripService) AddDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.AddDay(days), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddDay: %w", err)
	}
	return trip, nil
}

// RemoveLastDay removes the final day; a single-day itinerary is left alone.
func (s *TripService) RemoveLastDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.RemoveLastDay(days), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveLastDay: %w", err)
	}
	return trip, nil
}

// GenerateDays rebuilds the itinerary from the trip's stored date range,
// preserving activities on days that survive the resize. Changing the dates
// and regenerating are two separate saves by design — there is no
// transactional grouping between them.
func (s *TripService) GenerateDays(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	loaded, err := s.trips.Get(ctx, ownerID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GenerateDays: %w", err)
	}

	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.GenerateDays(days, loaded.StartDate, loaded.EndDate), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GenerateDays: %w", err)
	}
	return trip, nil
}

// AddActivity prepends a new activity to the given day.
// Returns domain.ErrValidation when the draft title is blank.
func (s *TripService) AddActivity(ctx context.Context, ownerID, tripID, dayID string, draft domain.Activity) (domain.Trip, error) {
	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.AddActivity(days, dayID, draft)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddActivity: %w", err)
	}
	return trip, nil
}

// DeleteActivity removes an activity; missing ids are a no-op.
func (s *TripService) DeleteActivity(ctx context.Context, ownerID, tripID, dayID, activityID string) (domain.Trip, error) {
	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.DeleteActivity(days, dayID, activityID), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.DeleteActivity: %w", err)
	}
	return trip, nil
}

// EditActivityField replaces one field of an activity without validation —
// live-typing edits may leave a title empty.
func (s *TripService) EditActivityField(ctx context.Context, ownerID, tripID, dayID, activityID string, field itinerary.Field, value string) (domain.Trip, error) {
	if !itinerary.ValidField(field) {
		return domain.Trip{}, fmt.Errorf("%w: unknown activity field %q", domain.ErrValidation, field)
	}

	trip, err := s.mutate(ctx, ownerID, tripID, func(days []domain.Day) ([]domain.Day, error) {
		return itinerary.EditActivityField(days, dayID, activityID, field, value), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.EditActivityField: %w", err)
	}
	return trip, nil
}

// mutate loads a trip, normalizes its days, applies fn, and persists the
// result. Validation failures from fn leave the stored trip untouched.
func (s *TripService) mutate(ctx context.Context, ownerID, tripID string, fn func([]domain.Day) ([]domain.Day, error)) (domain.Trip, error) {
	trip, err := s.trips.Get(ctx, ownerID, tripID)
	if err != nil {
		return domain.Trip{}, err
	}

	days, err := fn(itinerary.Normalize(trip.Itinerary))
	if err != nil {
		return domain.Trip{}, err
	}

	trip.Itinerary = days
	return s.trips.Save(ctx, ownerID, trip)
}
