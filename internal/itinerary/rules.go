package itinerary

import (
	"strings"

	"github.com/hsolberg/travelmate/internal/domain"
)

// rule maps normalized destination/country tokens to the presentation keys
// derived from a trip. One table backs the hero image, the memory gallery,
// and the flight/hotel lookup code so the three derivations can never use
// divergent matching logic.
type rule struct {
	tokens  []string // normalized tokens that select this rule
	hero    string   // hero image key
	gallery string   // memory gallery key; empty when no gallery exists
	code    string   // IATA city code for flight and hotel lookups
}

var rules = []rule{
	{tokens: []string{"tokyo", "japan", "jp"}, hero: "tokyo", gallery: "japan", code: "TYO"},
	{tokens: []string{"paris", "france", "fr"}, hero: "paris", code: "PAR"},
	{tokens: []string{"london", "gb", "uk"}, hero: "london", code: "LON"},
	{tokens: []string{"rome", "italy", "it"}, hero: "rome", code: "ROM"},
	{tokens: []string{"doha", "qatar", "qa"}, hero: "doha", code: "DOH"},
	{tokens: []string{"cairo", "egypt", "eg"}, hero: "cairo", code: "CAI"},
	{tokens: []string{"new york", "us"}, hero: "newyork", code: "NYC"},
	{tokens: []string{"bali", "denpasar", "id"}, hero: "bali", code: "DPS"},
}

// Fallbacks when no rule matches.
const (
	defaultHeroKey    = "default"
	defaultLookupCode = "PAR"
)

// candidates returns the match inputs for a trip in priority order:
// the full lowercased destination name, its first whitespace-delimited
// token, then the lowercased country code.
func candidates(trip domain.Trip) []string {
	name := strings.ToLower(strings.TrimSpace(trip.DestinationName))
	out := []string{name}
	if fields := strings.Fields(name); len(fields) > 0 && fields[0] != name {
		out = append(out, fields[0])
	}
	if cc := strings.ToLower(strings.TrimSpace(trip.CountryCode)); cc != "" {
		out = append(out, cc)
	}
	return out
}

// resolve returns the first rule matched by any candidate, in candidate
// order. The second return is false when nothing matches.
func resolve(trip domain.Trip) (rule, bool) {
	for _, c := range candidates(trip) {
		if c == "" {
			continue
		}
		for _, r := range rules {
			for _, tok := range r.tokens {
				if tok == c {
					return r, true
				}
			}
		}
	}
	return rule{}, false
}

// HeroKey derives the hero image key for a trip, falling back to the
// default key when the destination is unrecognized.
func HeroKey(trip domain.Trip) string {
	if r, ok := resolve(trip); ok {
		return r.hero
	}
	return defaultHeroKey
}

// GalleryKey derives the memory gallery key for a trip. The second return
// is false when the destination has no gallery; consumers must then omit
// the gallery section entirely.
func GalleryKey(trip domain.Trip) (string, bool) {
	if r, ok := resolve(trip); ok && r.gallery != "" {
		return r.gallery, true
	}
	return "", false
}

// LookupCode derives the IATA city code used for both flight-offer and
// hotel lookups, falling back to a single default code.
func LookupCode(trip domain.Trip) string {
	if r, ok := resolve(trip); ok {
		return r.code
	}
	return defaultLookupCode
}
