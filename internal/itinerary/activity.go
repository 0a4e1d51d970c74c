package itinerary

import (
	"fmt"
	"strings"

	"github.com/hsolberg/travelmate/internal/domain"
)

// Field names an editable activity field.
type Field string

// Editable activity fields.
const (
	FieldTime  Field = "time"
	FieldTitle Field = "title"
	FieldNotes Field = "notes"
)

// ValidField reports whether f names an editable activity field.
func ValidField(f Field) bool {
	return f == FieldTime || f == FieldTitle || f == FieldNotes
}

// AddActivity prepends a new activity (most recent first) to the day with
// the given id. The draft's title must be non-empty after trimming;
// otherwise domain.ErrValidation is returned and the input is unchanged.
// A missing day id is a silent no-op.
func AddActivity(days []domain.Day, dayID string, draft domain.Activity) ([]domain.Day, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return days, fmt.Errorf("%w: activity title is required", domain.ErrValidation)
	}

	activity := domain.Activity{
		ID:    domain.NewID(),
		Time:  strings.TrimSpace(draft.Time),
		Title: title,
		Notes: strings.TrimSpace(draft.Notes),
	}

	next := append([]domain.Day(nil), days...)
	for i, d := range next {
		if d.ID != dayID {
			continue
		}
		items := make([]domain.Activity, 0, len(d.Items)+1)
		items = append(items, activity)
		items = append(items, d.Items...)
		next[i].Items = items
		break
	}
	return next, nil
}

// DeleteActivity removes the matching activity from the day with the given
// id. Missing day or activity ids are silent no-ops.
func DeleteActivity(days []domain.Day, dayID, activityID string) []domain.Day {
	next := append([]domain.Day(nil), days...)
	for i, d := range next {
		if d.ID != dayID {
			continue
		}
		items := make([]domain.Activity, 0, len(d.Items))
		for _, it := range d.Items {
			if it.ID != activityID {
				items = append(items, it)
			}
		}
		next[i].Items = items
		break
	}
	return next
}

// EditActivityField replaces one field of the matching activity. Edits are
// not validated — live-typing may leave a title empty until the next save.
// Missing day or activity ids, or an unknown field, are silent no-ops.
func EditActivityField(days []domain.Day, dayID, activityID string, field Field, value string) []domain.Day {
	next := append([]domain.Day(nil), days...)
	for i, d := range next {
		if d.ID != dayID {
			continue
		}
		items := append([]domain.Activity(nil), d.Items...)
		for j, it := range items {
			if it.ID != activityID {
				continue
			}
			switch field {
			case FieldTime:
				it.Time = value
			case FieldTitle:
				it.Title = value
			case FieldNotes:
				it.Notes = value
			}
			items[j] = it
			break
		}
		next[i].Items = items
		break
	}
	return next
}
