// Package domain contains the core data types for the TravelMate API.
// This package has almost no external dependencies and is imported by every
// other internal package (store, repo, service, handler).
package domain

// Trip is the top-level aggregate: a user-owned destination with a date range
// and a day-by-day itinerary. JSON field names are camelCase so records are
// byte-compatible with what the original browser client persisted.
//
// StartDate and EndDate are "2006-01-02" strings or empty; they stay loose
// strings on purpose — an unparsable date degrades to a zero-day count
// instead of failing a load.
type Trip struct {
	ID              string `json:"id"`
	OwnerID         string `json:"ownerId"`
	DestinationName string `json:"destinationName"`
	CountryCode     string `json:"countryCode"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Itinerary       []Day  `json:"itinerary"`
	CreatedAt       string `json:"createdAt"` // RFC 3339 timestamp
	UpdatedAt       string `json:"updatedAt"`
}

// Day is one ordered bucket of activities within a trip's itinerary.
// Title defaults to "Day {n}" at creation time and is never renumbered
// afterwards.
type Day struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Items []Activity `json:"items"`
}

// Activity is a single timed or untimed plan item within a day.
// Time is free text, not validated as a clock value. Title must be non-empty
// when the activity is added; Time and Notes may be empty.
type Activity struct {
	ID    string `json:"id"`
	Time  string `json:"time"`
	Title string `json:"title"`
	Notes string `json:"notes"`
}
