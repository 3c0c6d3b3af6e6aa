package models

// Validation statuses attached to AI-suggested blocks after the per-block
// place lookup.
const (
	ValidationValid    = "VALID"
	ValidationNotFound = "NOT_FOUND"
	ValidationError    = "ERROR"
)

// PlanRequest is the client request for an AI-drafted itinerary.
type PlanRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	TravelStyle string   `json:"travelStyle,omitempty"`
	Pace        string   `json:"pace,omitempty"`
	BudgetLevel string   `json:"budgetLevel,omitempty"`
	MustVisit   []string `json:"mustVisit,omitempty"`
}

// AiSuggestedBlock is what the generative provider proposes per block. Only
// placeName and placeQueryHint identify the place; coordinates, addresses
// and ratings from the provider are never trusted.
type AiSuggestedBlock struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Category       string `json:"category,omitempty"`
	PlaceName      string `json:"placeName"`
	PlaceQueryHint string `json:"placeQueryHint,omitempty"`
	Area           string `json:"area,omitempty"`
	Memo           string `json:"memo,omitempty"`
}

// ValidatedBlock is an AiSuggestedBlock after the independent place lookup.
// Place fields are only set when ValidationStatus is VALID.
type ValidatedBlock struct {
	AiSuggestedBlock
	ValidationStatus string   `json:"validationStatus"`
	PlaceID          string   `json:"placeId,omitempty"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	Address          string   `json:"address,omitempty"`
}

// PlanDay is one validated day of an AI plan.
type PlanDay struct {
	Date       string           `json:"date"`
	Title      string           `json:"title,omitempty"`
	DaySummary string           `json:"daySummary,omitempty"`
	Blocks     []ValidatedBlock `json:"blocks"`
}

// PlanResponse is the full pipeline output: the AI-declared title/summary,
// the echoed request window, and every validated day with all statuses
// included so callers can display validation outcomes.
type PlanResponse struct {
	TripTitle   string    `json:"tripTitle,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Days        []PlanDay `json:"days"`
}
