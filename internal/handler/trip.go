package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/middleware"
)

// ListTrips handles GET /trips.
// An unauthenticated request gets an empty list, not a 401 — there is
// nothing to list when logged out.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context(), middleware.OwnerID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// PlanTrip handles POST /trips: create a trip from a destination search
// result.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DestinationName string `json:"destinationName"`
		CountryCode     string `json:"countryCode"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.Plan(r.Context(), middleware.OwnerID(r.Context()), body.DestinationName, body.CountryCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// SaveTrip handles PUT /trips/{tripID}: the explicit save of the client's
// working draft. The path id wins over whatever id the body carries.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if !decodeBody(w, r, &trip) {
		return
	}
	trip.ID = chi.URLParam(r, "tripID")

	saved, err := s.trips.Save(r.Context(), middleware.OwnerID(r.Context()), trip)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteTrip handles DELETE /trips/{tripID}. Deleting an absent trip
// succeeds — the end state is the same either way.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripPreview handles GET /trips/{tripID}/preview: the derived hero
// image key, memory gallery key, and flight/hotel lookup code.
func (s *Server) GetTripPreview(w http.ResponseWriter, r *http.Request) {
	preview, err := s.trips.Preview(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}
