package service

import (
	"context"
	"fmt"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/repo"
)

// ExportService assembles a flat export of an owner's trips and activities.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per activity across all of the owner's trips.
// Trips with no days contribute one row with empty day and activity fields;
// days with no activities contribute one row with empty activity fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, ownerID string) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:          t.ID,
			DestinationName: t.DestinationName,
			CountryCode:     t.CountryCode,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
		}
		if len(t.Itinerary) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, d := range t.Itinerary {
			dayRow := base
			dayRow.DayTitle = d.Title
			if len(d.Items) == 0 {
				rows = append(rows, dayRow)
				continue
			}
			for _, a := range d.Items {
				row := dayRow
				row.ActivityTime = a.Time
				row.ActivityTitle = a.Title
				row.ActivityNotes = a.Notes
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}
