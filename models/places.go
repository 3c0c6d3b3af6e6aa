package models

// PlaceResult is a normalized Places search hit. Transient; constructed
// fresh from each provider query and never persisted.
type PlaceResult struct {
	PlaceID          string   `json:"placeId"`
	Name             string   `json:"name"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"userRatingsTotal,omitempty"`
	PriceLevel       *int     `json:"priceLevel,omitempty"`
	Address          string   `json:"address,omitempty"`
	OpenNow          *bool    `json:"openNow,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// RouteSummary is the first route's first leg of a directions lookup.
type RouteSummary struct {
	Summary  string   `json:"summary"`
	Distance string   `json:"distance"`
	Duration string   `json:"duration"`
	Warnings []string `json:"warnings"`
}
