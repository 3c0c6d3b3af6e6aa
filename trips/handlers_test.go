package trips

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripmate/globals"
	"tripmate/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

// fakeStore serves one live (non-degraded) trip and records every write.
type fakeStore struct {
	trip     *models.Trip
	degraded bool
	updates  []models.Trip
	deletes  []string
}

func (s *fakeStore) FetchTrips(_ context.Context, _ string) ([]models.Trip, bool) {
	if s.trip == nil {
		return nil, s.degraded
	}
	return []models.Trip{*s.trip}, s.degraded
}

func (s *fakeStore) CreateTrip(_ context.Context, trip models.Trip, userID string) models.Trip {
	trip.UserID = userID
	return trip
}

func (s *fakeStore) UpdateTrip(_ context.Context, trip models.Trip, _ string) models.Trip {
	s.updates = append(s.updates, trip)
	return trip
}

func (s *fakeStore) DeleteTrip(_ context.Context, id string) {
	s.deletes = append(s.deletes, id)
}

func (s *fakeStore) FetchTrip(_ context.Context, id string) (*models.Trip, bool) {
	if s.trip != nil && s.trip.ID == id {
		trip := *s.trip
		return &trip, s.degraded
	}
	return nil, s.degraded
}

func (s *fakeStore) FetchTripBySlug(_ context.Context, slug string) (*models.Trip, bool) {
	if s.trip != nil && (s.trip.PublicSlug == slug || s.trip.ID == slug) {
		trip := *s.trip
		return &trip, s.degraded
	}
	return nil, s.degraded
}

func withStore(t *testing.T, s tripStore) {
	t.Helper()
	old := repo
	repo = s
	t.Cleanup(func() { repo = old })
}

func authedRequest(method, target, body, userID string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, userID))
	}
	return r
}

func ownedTrip() *models.Trip {
	return &models.Trip{
		ID: "t-1", UserID: "owner", Title: "Owned trip", PublicSlug: "t-1",
		StartDate: "2026-04-01", EndDate: "2026-04-03",
		Days: []models.Day{{ID: "day-1", Date: "2026-04-01", Blocks: []models.Block{
			{ID: "b-1", Title: "stop"},
		}}},
	}
}

var tripParams = httprouter.Params{
	{Key: "id", Value: "t-1"},
	{Key: "dayId", Value: "day-1"},
	{Key: "blockId", Value: "b-1"},
}

// Every route that can mutate a trip enforces the same owner guard, not
// just the wholesale PUT and DELETE.
func TestMutatingTripRoutesRejectNonOwner(t *testing.T) {
	cases := []struct {
		name    string
		handler httprouter.Handle
		method  string
		body    string
	}{
		{"UpdateTrip", UpdateTrip, http.MethodPut, `{"title":"hijacked"}`},
		{"DeleteTrip", DeleteTrip, http.MethodDelete, ""},
		{"ApplyPlan", ApplyPlan, http.MethodPost, `{"days":[]}`},
		{"UpdateBudget", UpdateBudget, http.MethodPut, `{"dailyFood":1}`},
		{"AddDay", AddDay, http.MethodPost, `{"date":"2026-04-02"}`},
		{"AddBlock", AddBlock, http.MethodPost, `{"title":"x"}`},
		{"UpdateBlock", UpdateBlock, http.MethodPut, `{}`},
		{"DeleteBlock", DeleteBlock, http.MethodDelete, ""},
		{"UploadCover", UploadCover, http.MethodPost, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{trip: ownedTrip()}
			withStore(t, store)

			w := httptest.NewRecorder()
			tc.handler(w, authedRequest(tc.method, "/api/trips/t-1", tc.body, "intruder"), tripParams)

			require.Equal(t, http.StatusForbidden, w.Code)
			require.Empty(t, store.updates)
			require.Empty(t, store.deletes)
		})
	}
}

func TestOwnerCanEditBlocks(t *testing.T) {
	store := &fakeStore{trip: ownedTrip()}
	withStore(t, store)

	w := httptest.NewRecorder()
	AddBlock(w, authedRequest(http.MethodPost, "/api/trips/t-1",
		`{"startTime":"09:00","endTime":"10:00","title":"Coffee"}`, "owner"), tripParams)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.updates, 1)
	require.Len(t, store.updates[0].Days[0].Blocks, 2)
}

// Sample trips served in degraded mode carry no real owner; the guard does
// not apply there because nothing durable can be damaged.
func TestDegradedTripsSkipOwnerGuard(t *testing.T) {
	trip := ownedTrip()
	trip.UserID = "demo-user"
	store := &fakeStore{trip: trip, degraded: true}
	withStore(t, store)

	w := httptest.NewRecorder()
	UpdateBudget(w, authedRequest(http.MethodPut, "/api/trips/t-1/budget",
		`{"dailyFood":25}`, "anyone"), tripParams)

	require.Equal(t, http.StatusOK, w.Code)
}
