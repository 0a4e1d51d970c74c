// Package handler implements the HTTP handlers for the TravelMate API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, itinerary.go, auth.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hsolberg/travelmate/internal/amadeus"
	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/itinerary"
)

// TripServicer defines the business operations the trip and itinerary
// handlers depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete types". It
// lets handler tests inject a mock without touching the store or service
// layer.
type TripServicer interface {
	List(ctx context.Context, ownerID string) ([]domain.Trip, error)
	Get(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	Plan(ctx context.Context, ownerID, destinationName, countryCode string) (domain.Trip, error)
	Save(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, ownerID, tripID string) error
	Preview(ctx context.Context, ownerID, tripID string) (domain.TripPreview, error)
	AddDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	RemoveLastDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	GenerateDays(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	AddActivity(ctx context.Context, ownerID, tripID, dayID string, draft domain.Activity) (domain.Trip, error)
	DeleteActivity(ctx context.Context, ownerID, tripID, dayID, activityID string) (domain.Trip, error)
	EditActivityField(ctx context.Context, ownerID, tripID, dayID, activityID string, field itinerary.Field, value string) (domain.Trip, error)
}

// AuthServicer defines the account operations the auth handlers depend on.
type AuthServicer interface {
	SignUp(ctx context.Context, name, email, password string) (domain.Session, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	SessionByToken(ctx context.Context, token string) (domain.Session, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, ownerID string) ([]domain.ExportRow, error)
}

// Lookup defines the read-only destination/flight/hotel queries the search
// handlers proxy. Satisfied by *amadeus.Client.
type Lookup interface {
	SearchCities(ctx context.Context, keyword string) ([]amadeus.City, error)
	FlightOffers(ctx context.Context, origin, destination, departureDate string) ([]amadeus.FlightOffer, error)
	HotelsByCity(ctx context.Context, cityCode string) ([]amadeus.Hotel, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips   TripServicer
	auth    AuthServicer
	export  ExportServicer
	lookup  Lookup
	openAPI []byte
}

// NewServer constructs the Server with all its dependencies.
// openAPI may be nil to disable the /openapi.yaml route.
func NewServer(trips TripServicer, auth AuthServicer, export ExportServicer, lookup Lookup, openAPI []byte) *Server {
	return &Server{trips: trips, auth: auth, export: export, lookup: lookup, openAPI: openAPI}
}

// Routes mounts every endpoint on a fresh chi router. searchLimiter, when
// non-nil, wraps the /search routes (they spend external API quota); pass
// nil to leave them unlimited.
func (s *Server) Routes(searchLimiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	if s.openAPI != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.SignUp)
		r.Post("/signin", s.SignIn)
		r.Post("/logout", s.Logout)
		r.Get("/me", s.Me)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.PlanTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.SaveTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/preview", s.GetTripPreview)

			r.Route("/days", func(r chi.Router) {
				r.Post("/", s.AddDay)
				r.Delete("/last", s.RemoveLastDay)
				r.Post("/generate", s.GenerateDays)

				r.Route("/{dayID}/activities", func(r chi.Router) {
					r.Post("/", s.AddActivity)
					r.Patch("/{activityID}", s.EditActivityField)
					r.Delete("/{activityID}", s.DeleteActivity)
				})
			})
		})
	})

	r.Get("/export", s.GetExport)

	r.Route("/search", func(r chi.Router) {
		if searchLimiter != nil {
			r.Use(searchLimiter)
		}
		r.Get("/cities", s.SearchCities)
		r.Get("/flights", s.SearchFlights)
		r.Get("/hotels", s.SearchHotels)
	})

	return r
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(s.openAPI)
}
