package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/itinerary"
	"github.com/hsolberg/travelmate/internal/middleware"
)

// AddDay handles POST /trips/{tripID}/days.
// Responds with the whole updated trip — the client replaces its draft.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.AddDay(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// RemoveLastDay handles DELETE /trips/{tripID}/days/last.
// Removing the only remaining day is a no-op, so this always succeeds for
// an existing trip.
func (s *Server) RemoveLastDay(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveLastDay(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// GenerateDays handles POST /trips/{tripID}/days/generate: rebuild the day
// sequence from the trip's stored date range. Save the dates first, then
// call this — the two steps are deliberately separate writes.
func (s *Server) GenerateDays(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GenerateDays(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// AddActivity handles POST /trips/{tripID}/days/{dayID}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Time  string `json:"time"`
		Title string `json:"title"`
		Notes string `json:"notes"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.AddActivity(
		r.Context(),
		middleware.OwnerID(r.Context()),
		chi.URLParam(r, "tripID"),
		chi.URLParam(r, "dayID"),
		domain.Activity{Time: body.Time, Title: body.Title, Notes: body.Notes},
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// EditActivityField handles PATCH .../activities/{activityID} with a body
// of {"field": "time"|"title"|"notes", "value": "..."}.
func (s *Server) EditActivityField(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.EditActivityField(
		r.Context(),
		middleware.OwnerID(r.Context()),
		chi.URLParam(r, "tripID"),
		chi.URLParam(r, "dayID"),
		chi.URLParam(r, "activityID"),
		itinerary.Field(body.Field),
		body.Value,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteActivity handles DELETE .../activities/{activityID}.
// A missing activity id is a no-op, not an error.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.DeleteActivity(
		r.Context(),
		middleware.OwnerID(r.Context()),
		chi.URLParam(r, "tripID"),
		chi.URLParam(r, "dayID"),
		chi.URLParam(r, "activityID"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
