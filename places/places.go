package places

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"tripmate/models"
	"tripmate/rdx"
	"tripmate/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = 5 * time.Minute

func apiKey() string {
	return os.Getenv("GOOGLE_MAPS_API_KEY")
}

func cacheKey(params SearchParams) string {
	parts := []string{
		"places", params.Query, params.Lat, params.Lng, params.Radius,
		params.Type, params.MaxPrice,
	}
	if params.OpenNow {
		parts = append(parts, "open")
	}
	return strings.Join(parts, ":")
}

// GET /api/places/search
func SearchPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	params := SearchParams{
		Query:    strings.TrimSpace(q.Get("query")),
		Lat:      q.Get("lat"),
		Lng:      q.Get("lng"),
		Radius:   q.Get("radius"),
		Type:     q.Get("type"),
		OpenNow:  q.Get("openNow") == "true",
		MaxPrice: q.Get("maxPrice"),
	}

	hasQuery := params.Query != ""
	hasLocation := params.Lat != "" && params.Lng != "" && params.Radius != ""
	if !hasQuery && !hasLocation {
		utils.RespondWithError(w, http.StatusBadRequest, "A search query or location coordinates are required")
		return
	}

	key := apiKey()
	if key == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Google Maps API key is not configured")
		return
	}

	ck := cacheKey(params)
	if cached := rdx.CacheGet(ck); cached != "" {
		var results []models.PlaceResult
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"results": results})
			return
		}
	}

	client := NewClient(key)
	results, err := client.Search(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrProvider) {
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
			return
		}
		log.Println("place search failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Place search failed")
		return
	}

	if payload, err := json.Marshal(results); err == nil {
		rdx.CachePut(ck, string(payload), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"results": results})
}
