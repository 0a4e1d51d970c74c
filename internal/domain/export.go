package domain

// ExportRow is a single row in the flat itinerary export.
// It is a denormalized view: one row per activity, with trip and day fields
// repeated for every activity on that day. Trips with an empty itinerary
// yield one row with zero values for all day and activity fields.
type ExportRow struct {
	// Trip fields — repeated for every activity on the trip.
	TripID          string `json:"tripId"`
	DestinationName string `json:"destinationName"`
	CountryCode     string `json:"countryCode"`
	StartDate       string `json:"startDate"` // "2006-01-02" or empty
	EndDate         string `json:"endDate"`

	// Day fields — zero values when the trip has no days.
	DayTitle string `json:"dayTitle"`

	// Activity fields — zero values when the day has no activities.
	ActivityTime  string `json:"activityTime"`
	ActivityTitle string `json:"activityTitle"`
	ActivityNotes string `json:"activityNotes"`
}
