package planner

import (
	"testing"

	"tripmate/models"

	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func validBlock(name string) models.ValidatedBlock {
	return models.ValidatedBlock{
		AiSuggestedBlock: models.AiSuggestedBlock{
			StartTime:      "10:00",
			EndTime:        "12:00",
			PlaceName:      name,
			PlaceQueryHint: name + " downtown",
			Category:       models.CategoryMorning,
		},
		ValidationStatus: models.ValidationValid,
		PlaceID:          "pid-" + name,
		Lat:              f(37.5),
		Lng:              f(127.0),
		Rating:           f(4.4),
		Address:          name + " street 1",
	}
}

func invalidBlock(name, status string) models.ValidatedBlock {
	return models.ValidatedBlock{
		AiSuggestedBlock: models.AiSuggestedBlock{PlaceName: name},
		ValidationStatus: status,
	}
}

// Only VALID blocks are merged; NOT_FOUND and ERROR blocks never reach the
// trip, and a day consisting solely of them creates no day.
func TestMergePlanSkipsUnvalidatedBlocks(t *testing.T) {
	trip := models.Trip{ID: "trip-1"}
	plan := models.PlanResponse{Days: []models.PlanDay{
		{Date: "2026-04-01", Blocks: []models.ValidatedBlock{
			validBlock("museum"),
			invalidBlock("ghost cafe", models.ValidationNotFound),
			invalidBlock("flaky bar", models.ValidationError),
		}},
		{Date: "2026-04-02", Blocks: []models.ValidatedBlock{
			invalidBlock("nowhere", models.ValidationNotFound),
		}},
	}}

	merged, added := MergePlan(trip, plan)
	require.Equal(t, 1, added)
	require.Len(t, merged.Days, 1)
	require.Equal(t, "2026-04-01", merged.Days[0].Date)
	require.Len(t, merged.Days[0].Blocks, 1)

	block := merged.Days[0].Blocks[0]
	require.Equal(t, "museum", block.Title)
	require.Equal(t, models.SourceAIValidated, block.Source)
	require.Equal(t, "pid-museum", block.PlaceID)
}

// A plan with zero VALID blocks is a no-op: added is 0 and the trip comes
// back unchanged.
func TestMergePlanNoValidBlocksIsNoop(t *testing.T) {
	trip := models.Trip{ID: "trip-1", Title: "Original", Days: []models.Day{
		{ID: "day-1", Date: "2026-04-01"},
	}}
	plan := models.PlanResponse{
		TripTitle: "AI title",
		Days: []models.PlanDay{
			{Date: "2026-04-01", Blocks: []models.ValidatedBlock{
				invalidBlock("a", models.ValidationNotFound),
			}},
		},
	}

	merged, added := MergePlan(trip, plan)
	require.Equal(t, 0, added)
	require.Equal(t, trip, merged)
}

// Plan days land on existing trip days when the calendar date matches
// exactly; otherwise a new day is synthesized.
func TestMergePlanMatchesDaysByDate(t *testing.T) {
	trip := models.Trip{ID: "trip-1", Days: []models.Day{
		{ID: "day-1", Date: "2026-04-01", Blocks: []models.Block{
			{ID: "b-1", Title: "existing stop"},
		}},
	}}
	plan := models.PlanResponse{Days: []models.PlanDay{
		{Date: "2026-04-01", Blocks: []models.ValidatedBlock{validBlock("brunch")}},
		{Date: "2026-04-02", Blocks: []models.ValidatedBlock{validBlock("temple")}},
	}}

	merged, added := MergePlan(trip, plan)
	require.Equal(t, 2, added)
	require.Len(t, merged.Days, 2)

	require.Equal(t, "day-1", merged.Days[0].ID)
	require.Len(t, merged.Days[0].Blocks, 2)
	require.Equal(t, "existing stop", merged.Days[0].Blocks[0].Title)

	require.Equal(t, "2026-04-02", merged.Days[1].Date)
	require.NotEmpty(t, merged.Days[1].ID)
	require.Equal(t, merged.Days[1].ID, merged.Days[1].Blocks[0].DayID)
}

// Trip and day titles/summaries are backfilled only when absent; existing
// values always win over the plan's.
func TestMergePlanBackfillsOnlyMissingTitles(t *testing.T) {
	trip := models.Trip{ID: "trip-1", Title: "My trip", Days: []models.Day{
		{ID: "day-1", Date: "2026-04-01", Title: "Arrival day"},
	}}
	plan := models.PlanResponse{
		TripTitle: "AI trip title",
		Summary:   "AI summary",
		Days: []models.PlanDay{
			{Date: "2026-04-01", Title: "AI day title", DaySummary: "AI day summary",
				Blocks: []models.ValidatedBlock{validBlock("park")}},
		},
	}

	merged, _ := MergePlan(trip, plan)
	require.Equal(t, "My trip", merged.Title)
	require.Equal(t, "AI summary", merged.Summary)
	require.Equal(t, "Arrival day", merged.Days[0].Title)
	require.Equal(t, "AI day summary", merged.Days[0].Summary)
}

// The block memo falls back to the placeQueryHint when the AI gave none.
func TestMergePlanMemoFallsBackToQueryHint(t *testing.T) {
	block := validBlock("harbor")
	block.Memo = ""

	merged, _ := MergePlan(models.Trip{ID: "t"}, models.PlanResponse{Days: []models.PlanDay{
		{Date: "2026-04-01", Blocks: []models.ValidatedBlock{block}},
	}})
	require.Equal(t, "harbor downtown", merged.Days[0].Blocks[0].Memo)
}

// Merging never writes through the input trip's block slices, even when
// they have spare capacity for the appended blocks.
func TestMergePlanDoesNotMutateInputBlocks(t *testing.T) {
	blocks := make([]models.Block, 1, 4)
	blocks[0] = models.Block{ID: "b-1", Title: "existing stop"}
	trip := models.Trip{ID: "t", Days: []models.Day{
		{ID: "day-1", Date: "2026-04-01", Blocks: blocks},
	}}

	merged, added := MergePlan(trip, models.PlanResponse{Days: []models.PlanDay{
		{Date: "2026-04-01", Blocks: []models.ValidatedBlock{validBlock("garden")}},
	}})
	require.Equal(t, 1, added)
	require.Len(t, merged.Days[0].Blocks, 2)

	require.Len(t, trip.Days[0].Blocks, 1)
	require.Equal(t, models.Block{}, blocks[:cap(blocks)][1])
}

// Applying the same plan twice appends the blocks twice; merging is not
// deduplicating, the caller decides whether to re-apply.
func TestMergePlanAppendsOnReapply(t *testing.T) {
	plan := models.PlanResponse{Days: []models.PlanDay{
		{Date: "2026-04-01", Blocks: []models.ValidatedBlock{validBlock("tower")}},
	}}

	once, _ := MergePlan(models.Trip{ID: "t"}, plan)
	twice, added := MergePlan(once, plan)
	require.Equal(t, 1, added)
	require.Len(t, twice.Days, 1)
	require.Len(t, twice.Days[0].Blocks, 2)
}
