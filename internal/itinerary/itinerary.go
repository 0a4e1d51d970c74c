// Package itinerary implements the trip itinerary engine: pure
// transformations over a trip's day/activity structure. Every function
// returns a fresh slice and leaves its input untouched — the caller owns the
// working draft and decides when to persist it.
package itinerary

import (
	"fmt"
	"time"

	"github.com/hsolberg/travelmate/internal/domain"
)

// dateLayout is the calendar-date format used for trip start/end dates.
const dateLayout = "2006-01-02"

// Normalize turns possibly malformed or absent stored itinerary data into a
// well-formed day sequence. An empty itinerary becomes a single "Day 1" with
// no items; otherwise missing ids and titles are filled in and nil item
// slices become empty ones.
//
// This is the single normalization boundary: nothing downstream assumes
// optional fields.
func Normalize(raw []domain.Day) []domain.Day {
	if len(raw) == 0 {
		return []domain.Day{{ID: domain.NewID(), Title: "Day 1", Items: []domain.Activity{}}}
	}

	days := make([]domain.Day, len(raw))
	for i, d := range raw {
		if d.ID == "" {
			d.ID = domain.NewID()
		}
		if d.Title == "" {
			d.Title = fmt.Sprintf("Day %d", i+1)
		}
		items := make([]domain.Activity, len(d.Items))
		for j, it := range d.Items {
			if it.ID == "" {
				it.ID = domain.NewID()
			}
			items[j] = it
		}
		d.Items = items
		days[i] = d
	}
	return days
}

// DaysBetween returns the inclusive day count between two calendar dates
// ("2006-01-02"). It returns 0 when either date is missing or unparsable,
// or when end is before start. Same start and end date counts as 1.
func DaysBetween(startISO, endISO string) int {
	start, err := time.Parse(dateLayout, startISO)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endISO)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// GenerateDays rebuilds the day sequence to match the given date range.
// When the range yields zero days the input is returned unchanged. Otherwise
// exactly n days titled "Day 1".."Day n" are produced: positions that
// already exist keep their id and activities (so extending or shrinking the
// range preserves user-entered plans), new positions get fresh ids with no
// items, and days beyond the range are dropped.
func GenerateDays(days []domain.Day, startISO, endISO string) []domain.Day {
	n := DaysBetween(startISO, endISO)
	if n == 0 {
		return days
	}

	next := make([]domain.Day, n)
	for i := 0; i < n; i++ {
		d := domain.Day{Title: fmt.Sprintf("Day %d", i+1), Items: []domain.Activity{}}
		if i < len(days) {
			d.ID = days[i].ID
			d.Items = append([]domain.Activity(nil), days[i].Items...)
		} else {
			d.ID = domain.NewID()
		}
		next[i] = d
	}
	return next
}

// AddDay appends one new day titled "Day {len+1}" with no items.
func AddDay(days []domain.Day) []domain.Day {
	next := append([]domain.Day(nil), days...)
	return append(next, domain.Day{
		ID:    domain.NewID(),
		Title: fmt.Sprintf("Day %d", len(days)+1),
		Items: []domain.Activity{},
	})
}

// RemoveLastDay removes the final day. A trip always keeps at least one day,
// so removing from a single-day itinerary is a no-op. Remaining days are not
// renumbered; only the last day can ever be removed, so no mid-sequence gap
// can appear.
func RemoveLastDay(days []domain.Day) []domain.Day {
	if len(days) <= 1 {
		return days
	}
	return append([]domain.Day(nil), days[:len(days)-1]...)
}
