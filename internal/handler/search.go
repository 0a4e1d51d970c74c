// Package handler — search.go proxies the read-only destination, flight,
// and hotel lookups. Lookup failures never become HTTP errors: the client
// gets an empty result set plus a status flag, and the application stays
// usable.
package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/hsolberg/travelmate/internal/amadeus"
)

// searchResponse wraps every lookup result with the status flag the
// presentation layer reads: "ok" or "error". Data is never null.
type searchResponse[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
}

func searchOK[T any](data []T) searchResponse[T] {
	if data == nil {
		data = []T{}
	}
	return searchResponse[T]{Status: "ok", Data: data}
}

func searchFailed[T any]() searchResponse[T] {
	return searchResponse[T]{Status: "error", Data: []T{}}
}

// SearchCities handles GET /search/cities?keyword=...
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	var keyword string
	if err := runtime.BindQueryParameter("form", true, true, "keyword", r.URL.Query(), &keyword); err != nil || keyword == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "keyword is required")
		return
	}

	cities, err := s.lookup.SearchCities(r.Context(), keyword)
	if err != nil {
		writeJSON(w, http.StatusOK, searchFailed[amadeus.City]())
		return
	}
	writeJSON(w, http.StatusOK, searchOK(cities))
}

// SearchFlights handles GET /search/flights?origin=&destination=&departure_date=
// The departure date must be a strict calendar date; the route codes are
// passed through as-is.
func (s *Server) SearchFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var origin, destination string
	if err := runtime.BindQueryParameter("form", true, true, "origin", query, &origin); err != nil || origin == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "origin is required")
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "destination", query, &destination); err != nil || destination == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "destination is required")
		return
	}

	var departureDate openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, "departure_date", query, &departureDate); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "departure_date must be a YYYY-MM-DD date")
		return
	}

	offers, err := s.lookup.FlightOffers(r.Context(), origin, destination, departureDate.Format(openapi_types.DateFormat))
	if err != nil {
		writeJSON(w, http.StatusOK, searchFailed[amadeus.FlightOffer]())
		return
	}
	writeJSON(w, http.StatusOK, searchOK(offers))
}

// SearchHotels handles GET /search/hotels?city_code=...
func (s *Server) SearchHotels(w http.ResponseWriter, r *http.Request) {
	var cityCode string
	if err := runtime.BindQueryParameter("form", true, true, "city_code", r.URL.Query(), &cityCode); err != nil || cityCode == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "city_code is required")
		return
	}

	hotels, err := s.lookup.HotelsByCity(r.Context(), cityCode)
	if err != nil {
		writeJSON(w, http.StatusOK, searchFailed[amadeus.Hotel]())
		return
	}
	writeJSON(w, http.StatusOK, searchOK(hotels))
}
