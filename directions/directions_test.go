package directions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func withFakeProvider(t *testing.T, payload string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	old := Endpoint
	Endpoint = srv.URL
	t.Cleanup(func() { Endpoint = old })
}

func TestGetDirectionsRequiresCoordinates(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/directions?originLat=37.5&originLng=127.0", nil)
	w := httptest.NewRecorder()
	GetDirections(w, r, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDirectionsMissingKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	r := httptest.NewRequest(http.MethodGet,
		"/api/directions?originLat=1&originLng=2&destinationLat=3&destinationLng=4", nil)
	w := httptest.NewRecorder()
	GetDirections(w, r, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

// Only the first route's first leg is extracted; alternatives are ignored.
func TestGetDirectionsFirstRouteFirstLeg(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")
	withFakeProvider(t, `{
		"routes": [
			{
				"summary": "Line 2",
				"warnings": ["subway information may change"],
				"legs": [
					{"distance": {"text": "5.2 km"}, "duration": {"text": "18 mins"}},
					{"distance": {"text": "1 km"}, "duration": {"text": "3 mins"}}
				]
			},
			{"summary": "Bus 401", "legs": [{"distance": {"text": "9 km"}, "duration": {"text": "40 mins"}}]}
		]
	}`)

	r := httptest.NewRequest(http.MethodGet,
		"/api/directions?originLat=37.5&originLng=127.0&destinationLat=37.6&destinationLng=127.1", nil)
	w := httptest.NewRecorder()
	GetDirections(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `"summary":"Line 2"`)
	require.Contains(t, body, `"distance":"5.2 km"`)
	require.Contains(t, body, `"duration":"18 mins"`)
	require.Contains(t, body, "subway information may change")
	require.NotContains(t, body, "Bus 401")
}

// An empty route list still answers 200 with a blank summary; the provider
// is the authority on what a route between two points looks like.
func TestGetDirectionsNoRoutes(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")
	withFakeProvider(t, `{"routes":[]}`)

	r := httptest.NewRequest(http.MethodGet,
		"/api/directions?originLat=1&originLng=2&destinationLat=1&destinationLng=2", nil)
	w := httptest.NewRecorder()
	GetDirections(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"summary":""`)
	require.Contains(t, w.Body.String(), `"warnings":[]`)
}
