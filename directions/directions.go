// Package directions proxies route lookups to the Directions provider and
// extracts only the first route's first leg.
package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"tripmate/models"
	"tripmate/utils"

	"github.com/julienschmidt/httprouter"
)

const DefaultEndpoint = "https://maps.googleapis.com/maps/api/directions/json"

// Endpoint is a package variable so tests can point at a fake provider.
var Endpoint = DefaultEndpoint

var httpClient = &http.Client{Timeout: 15 * time.Second}

type googleDirectionsResponse struct {
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
		Warnings []string `json:"warnings"`
	} `json:"routes"`
}

func lookup(ctx context.Context, apiKey, origin, destination, mode string) (*models.RouteSummary, error) {
	values := url.Values{}
	values.Set("origin", origin)
	values.Set("destination", destination)
	values.Set("mode", mode)
	values.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, Endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions call failed: %s", resp.Status)
	}

	var payload googleDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	// Only the first route's first leg matters; no multi-route comparison.
	route := models.RouteSummary{Warnings: []string{}}
	if len(payload.Routes) > 0 {
		first := payload.Routes[0]
		route.Summary = first.Summary
		if first.Warnings != nil {
			route.Warnings = first.Warnings
		}
		if len(first.Legs) > 0 {
			route.Distance = first.Legs[0].Distance.Text
			route.Duration = first.Legs[0].Duration.Text
		}
	}
	return &route, nil
}

// GET /api/directions
func GetDirections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	originLat := q.Get("originLat")
	originLng := q.Get("originLng")
	destinationLat := q.Get("destinationLat")
	destinationLng := q.Get("destinationLng")
	mode := q.Get("mode")
	if mode == "" {
		mode = "transit"
	}

	if originLat == "" || originLng == "" || destinationLat == "" || destinationLng == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Origin and destination coordinates are required")
		return
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Google Maps API key is not configured")
		return
	}

	// Identical origin and destination still goes to the provider; a
	// zero-distance route is whatever the provider says it is.
	route, err := lookup(r.Context(), apiKey, originLat+","+originLng, destinationLat+","+destinationLng, mode)
	if err != nil {
		log.Println("directions lookup failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch route information")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"route": route})
}
