package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripmate/models"
)

const DefaultEndpoint = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// ErrProvider wraps an error condition reported by the Places provider
// itself (as opposed to a transport failure).
var ErrProvider = errors.New("places provider error")

// SearchParams mirrors the query surface of the text-search endpoint. Query
// and/or a full location triple must be present; the handler validates that
// before any provider call.
type SearchParams struct {
	Query    string
	Lat      string
	Lng      string
	Radius   string
	Type     string
	OpenNow  bool
	MaxPrice string
}

// Client wraps the Places text-search provider and normalizes its result
// shape. Endpoint is overridable for tests.
type Client struct {
	APIKey   string
	Endpoint string
	HTTP     *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:   apiKey,
		Endpoint: DefaultEndpoint,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

type googlePlace struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Geometry struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       *int     `json:"price_level"`
	FormattedAddress string   `json:"formatted_address"`
	OpeningHours     *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
	Types []string `json:"types"`
}

type googlePlacesResponse struct {
	Results      []googlePlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

func normalizeResult(item googlePlace) models.PlaceResult {
	result := models.PlaceResult{
		PlaceID:          item.PlaceID,
		Name:             item.Name,
		Lat:              item.Geometry.Location.Lat,
		Lng:              item.Geometry.Location.Lng,
		Rating:           item.Rating,
		UserRatingsTotal: item.UserRatingsTotal,
		PriceLevel:       item.PriceLevel,
		Address:          item.FormattedAddress,
		Types:            item.Types,
	}
	if item.OpeningHours != nil {
		result.OpenNow = item.OpeningHours.OpenNow
	}
	return result
}

// Search forwards the query to the provider and returns normalized results.
// Zero matches is an empty list, not an error; ErrProvider is returned when
// the provider reports an error condition of its own.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]models.PlaceResult, error) {
	values := url.Values{}
	if params.Query != "" {
		values.Set("query", params.Query)
	}
	if params.Lat != "" && params.Lng != "" && params.Radius != "" {
		values.Set("location", params.Lat+","+params.Lng)
		values.Set("radius", params.Radius)
	}
	if params.Type != "" {
		values.Set("type", params.Type)
	}
	if params.OpenNow {
		values.Set("opennow", "true")
	}
	if params.MaxPrice != "" {
		values.Set("maxprice", params.MaxPrice)
	}
	values.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places call failed: %s", resp.Status)
	}

	var payload googlePlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", ErrProvider, payload.ErrorMessage)
	}

	results := make([]models.PlaceResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		results = append(results, normalizeResult(item))
	}
	return results, nil
}

// Resolve runs a plain text query and returns the first hit, or nil when the
// provider finds nothing. The first result is taken as authoritative; there
// is no disambiguation step.
func (c *Client) Resolve(ctx context.Context, query string) (*models.PlaceResult, error) {
	results, err := c.Search(ctx, SearchParams{Query: query})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
