package models

// Lifecycle status of a trip.
const (
	TripStatusDraft     = "draft"
	TripStatusScheduled = "scheduled"
	TripStatusCompleted = "completed"
)

// Block categories, fixed enumeration.
const (
	CategoryMorning   = "MORNING"
	CategoryLunch     = "LUNCH"
	CategoryAfternoon = "AFTERNOON"
	CategoryDinner    = "DINNER"
	CategoryNight     = "NIGHT"
)

// Block sources.
const (
	SourceUser        = "USER"
	SourceAIValidated = "AI_VALIDATED"
	SourceAIDraft     = "AI_DRAFT"
)

// Budget is a simple per-trip cost breakdown.
type Budget struct {
	LodgingPerNight int `json:"lodgingPerNight,omitempty" bson:"lodgingPerNight,omitempty"`
	DailyFood       int `json:"dailyFood,omitempty" bson:"dailyFood,omitempty"`
	Transport       int `json:"transport,omitempty" bson:"transport,omitempty"`
	Etc             int `json:"etc,omitempty" bson:"etc,omitempty"`
}

// Block is one scheduled entry of a day. Start/end times are "HH:MM" strings
// as entered; the UI never enforced start < end and neither does the store.
type Block struct {
	ID             string   `json:"id" bson:"id"`
	TripID         string   `json:"tripId" bson:"tripId"`
	DayID          string   `json:"dayId" bson:"dayId"`
	StartTime      string   `json:"startTime" bson:"startTime"`
	EndTime        string   `json:"endTime" bson:"endTime"`
	Title          string   `json:"title" bson:"title"`
	Memo           string   `json:"memo,omitempty" bson:"memo,omitempty"`
	Category       string   `json:"category,omitempty" bson:"category,omitempty"`
	PlaceID        string   `json:"placeId,omitempty" bson:"placeId,omitempty"`
	Lat            *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
	Address        string   `json:"address,omitempty" bson:"address,omitempty"`
	Rating         *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Source         string   `json:"source" bson:"source"`
	PlaceQueryHint string   `json:"placeQueryHint,omitempty" bson:"placeQueryHint,omitempty"`
}

// Day belongs to exactly one trip. Blocks keep insertion order; they are not
// re-sorted by time.
type Day struct {
	ID            string  `json:"id" bson:"id"`
	TripID        string  `json:"tripId" bson:"tripId"`
	Date          string  `json:"date" bson:"date"`
	Title         string  `json:"title,omitempty" bson:"title,omitempty"`
	Summary       string  `json:"summary,omitempty" bson:"summary,omitempty"`
	BudgetPlanned int     `json:"budgetPlanned,omitempty" bson:"budgetPlanned,omitempty"`
	Blocks        []Block `json:"blocks" bson:"blocks"`
}

// Trip is the root document; days and blocks are nested inline, so deleting
// a trip removes its full schedule in one atomic operation.
type Trip struct {
	ID          string   `json:"id" bson:"id"`
	UserID      string   `json:"userId" bson:"userId"`
	Title       string   `json:"title" bson:"title"`
	Destination string   `json:"destination" bson:"destination"`
	StartDate   string   `json:"startDate" bson:"startDate"`
	EndDate     string   `json:"endDate" bson:"endDate"`
	Summary     string   `json:"summary,omitempty" bson:"summary,omitempty"`
	Status      string   `json:"status" bson:"status"`
	Timezone    string   `json:"timezone,omitempty" bson:"timezone,omitempty"`
	PublicSlug  string   `json:"publicSlug,omitempty" bson:"publicSlug,omitempty"`
	Highlights  []string `json:"highlights,omitempty" bson:"highlights,omitempty"`
	Notes       []string `json:"notes,omitempty" bson:"notes,omitempty"`
	Days        []Day    `json:"days,omitempty" bson:"days,omitempty"`
	Budget      *Budget  `json:"budget,omitempty" bson:"budget,omitempty"`
	BudgetTotal int      `json:"budgetTotal,omitempty" bson:"budgetTotal,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty" bson:"coverUrl,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ShareSlug resolves the slug used for public share links; a trip without an
// explicit publicSlug is shared under its id.
func (t *Trip) ShareSlug() string {
	if t.PublicSlug != "" {
		return t.PublicSlug
	}
	return t.ID
}

// HasDate reports whether the trip already has a day on the given calendar
// date. Date matching is exact string equality on YYYY-MM-DD.
func (t *Trip) HasDate(date string) bool {
	for i := range t.Days {
		if t.Days[i].Date == date {
			return true
		}
	}
	return false
}
