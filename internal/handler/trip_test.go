package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsolberg/travelmate/internal/domain"
	"github.com/hsolberg/travelmate/internal/handler"
	"github.com/hsolberg/travelmate/internal/itinerary"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	list              func(ctx context.Context, ownerID string) ([]domain.Trip, error)
	get               func(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	plan              func(ctx context.Context, ownerID, destinationName, countryCode string) (domain.Trip, error)
	save              func(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error)
	delete            func(ctx context.Context, ownerID, tripID string) error
	preview           func(ctx context.Context, ownerID, tripID string) (domain.TripPreview, error)
	addDay            func(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	removeLastDay     func(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	generateDays      func(ctx context.Context, ownerID, tripID string) (domain.Trip, error)
	addActivity       func(ctx context.Context, ownerID, tripID, dayID string, draft domain.Activity) (domain.Trip, error)
	deleteActivity    func(ctx context.Context, ownerID, tripID, dayID, activityID string) (domain.Trip, error)
	editActivityField func(ctx context.Context, ownerID, tripID, dayID, activityID string, field itinerary.Field, value string) (domain.Trip, error)
}

func (m *mockTripServicer) List(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	return m.list(ctx, ownerID)
}
func (m *mockTripServicer) Get(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	return m.get(ctx, ownerID, tripID)
}
func (m *mockTripServicer) Plan(ctx context.Context, ownerID, destinationName, countryCode string) (domain.Trip, error) {
	return m.plan(ctx, ownerID, destinationName, countryCode)
}
func (m *mockTripServicer) Save(ctx context.Context, ownerID string, trip domain.Trip) (domain.Trip, error) {
	return m.save(ctx, ownerID, trip)
}
func (m *mockTripServicer) Delete(ctx context.Context, ownerID, tripID string) error {
	return m.delete(ctx, ownerID, tripID)
}
func (m *mockTripServicer) Preview(ctx context.Context, ownerID, tripID string) (domain.TripPreview, error) {
	return m.preview(ctx, ownerID, tripID)
}
func (m *mockTripServicer) AddDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	return m.addDay(ctx, ownerID, tripID)
}
func (m *mockTripServicer) RemoveLastDay(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	return m.removeLastDay(ctx, ownerID, tripID)
}
func (m *mockTripServicer) GenerateDays(ctx context.Context, ownerID, tripID string) (domain.Trip, error) {
	return m.generateDays(ctx, ownerID, tripID)
}
func (m *mockTripServicer) AddActivity(ctx context.Context, ownerID, tripID, dayID string, draft domain.Activity) (domain.Trip, error) {
	return m.addActivity(ctx, ownerID, tripID, dayID, draft)
}
func (m *mockTripServicer) DeleteActivity(ctx context.Context, ownerID, tripID, dayID, activityID string) (domain.Trip, error) {
	return m.deleteActivity(ctx, ownerID, tripID, dayID, activityID)
}
func (m *mockTripServicer) EditActivityField(ctx context.Context, ownerID, tripID, dayID, activityID string, field itinerary.Field, value string) (domain.Trip, error) {
	return m.editActivityField(ctx, ownerID, tripID, dayID, activityID, field, value)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newTripHandler mounts a Server with the given trip mock on its real
// routes, the same wiring main.go uses minus middleware.
func newTripHandler(svc handler.TripServicer) http.Handler {
	return handler.NewServer(svc, nil, nil, nil, nil).Routes(nil)
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:              "t1",
		OwnerID:         "u1",
		DestinationName: "Tokyo",
		CountryCode:     "JP",
		StartDate:       "2025-04-02",
		EndDate:         "2025-04-04",
		Itinerary: []domain.Day{
			{ID: "d1", Title: "Day 1", Items: []domain.Activity{}},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func doJSON(t *testing.T, h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context, _ string) ([]domain.Trip, error) {
			return []domain.Trip{tripFixture()}, nil
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Tokyo", resp[0].DestinationName)
}

func TestListTrips_200_EmptyWhenLoggedOut(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context, ownerID string) ([]domain.Trip, error) {
			assert.Empty(t, ownerID, "no session means an empty owner id")
			return []domain.Trip{}, nil
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips", nil)

	// An unauthenticated list is an empty array, not a 401.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ---- POST /trips -----------------------------------------------------------

func TestPlanTrip_201(t *testing.T) {
	svc := &mockTripServicer{
		plan: func(_ context.Context, _, destinationName, countryCode string) (domain.Trip, error) {
			assert.Equal(t, "Tokyo", destinationName)
			assert.Equal(t, "JP", countryCode)
			return tripFixture(), nil
		},
	}

	body := jsonBody(t, map[string]any{"destinationName": "Tokyo", "countryCode": "JP"})
	rec := doJSON(t, newTripHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "t1", resp.ID)
}

func TestPlanTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		plan: func(_ context.Context, _, _, _ string) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"destinationName": ""})
	rec := doJSON(t, newTripHandler(svc), http.MethodPost, "/trips", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	// The wrapped prefix is stripped; the client sees only the message.
	assert.Contains(t, rec.Body.String(), "destination name is required")
	assert.NotContains(t, rec.Body.String(), "service.")
}

func TestPlanTrip_422_MalformedBody(t *testing.T) {
	svc := &mockTripServicer{}

	rec := doJSON(t, newTripHandler(svc), http.MethodPost, "/trips",
		bytes.NewBufferString(`{not json`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripID} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	svc := &mockTripServicer{
		get: func(_ context.Context, _, tripID string) (domain.Trip, error) {
			assert.Equal(t, "t1", tripID)
			return tripFixture(), nil
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips/t1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		get: func(_ context.Context, _, _ string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /trips/{tripID} ---------------------------------------------------

func TestSaveTrip_200_PathIDWins(t *testing.T) {
	svc := &mockTripServicer{
		save: func(_ context.Context, _ string, trip domain.Trip) (domain.Trip, error) {
			assert.Equal(t, "t1", trip.ID, "the path id overrides the body id")
			return trip, nil
		},
	}

	body := jsonBody(t, map[string]any{"id": "tampered", "destinationName": "Tokyo"})
	rec := doJSON(t, newTripHandler(svc), http.MethodPut, "/trips/t1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveTrip_503_StorageWriteFailure(t *testing.T) {
	svc := &mockTripServicer{
		save: func(_ context.Context, _ string, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("save: %w", domain.ErrStorageWrite)
		},
	}

	body := jsonBody(t, map[string]any{"destinationName": "Tokyo"})
	rec := doJSON(t, newTripHandler(svc), http.MethodPut, "/trips/t1", body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage_write_failed")
}

// ---- DELETE /trips/{tripID} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _, _ string) error { return nil },
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodDelete, "/trips/t1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ---- GET /trips/{tripID}/preview -------------------------------------------

func TestGetTripPreview_200(t *testing.T) {
	svc := &mockTripServicer{
		preview: func(_ context.Context, _, _ string) (domain.TripPreview, error) {
			return domain.TripPreview{
				HeroKey: "tokyo", GalleryKey: "japan", HasGallery: true, LookupCode: "TYO",
			}, nil
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips/t1/preview", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TripPreview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "tokyo", resp.HeroKey)
	assert.Equal(t, "japan", resp.GalleryKey)
	assert.True(t, resp.HasGallery)
	assert.Equal(t, "TYO", resp.LookupCode)
}

func TestGetTripPreview_NoGalleryOmitsKey(t *testing.T) {
	svc := &mockTripServicer{
		preview: func(_ context.Context, _, _ string) (domain.TripPreview, error) {
			return domain.TripPreview{HeroKey: "paris", LookupCode: "PAR"}, nil
		},
	}

	rec := doJSON(t, newTripHandler(svc), http.MethodGet, "/trips/t1/preview", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "galleryKey")
}

// ---- GET /healthz ----------------------------------------------------------

func TestGetHealth_200(t *testing.T) {
	rec := doJSON(t, newTripHandler(&mockTripServicer{}), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// ---- GET /openapi.yaml -----------------------------------------------------

func TestGetOpenAPI(t *testing.T) {
	doc := []byte("openapi: 3.0.3\n")
	h := handler.NewServer(&mockTripServicer{}, nil, nil, nil, doc).Routes(nil)

	rec := doJSON(t, h, http.MethodGet, "/openapi.yaml", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Equal(t, string(doc), rec.Body.String())
}

func TestGetOpenAPI_DisabledWithoutDocument(t *testing.T) {
	rec := doJSON(t, newTripHandler(&mockTripServicer{}), http.MethodGet, "/openapi.yaml", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
