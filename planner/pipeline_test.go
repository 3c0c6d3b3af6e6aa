package planner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tripmate/models"

	"github.com/stretchr/testify/require"
)

// fakeResolver maps queries to canned outcomes: a place, nil, or an error.
// Lookups run concurrently within a day, so call recording is locked.
type fakeResolver struct {
	places map[string]*models.PlaceResult
	errs   map[string]error

	mu    sync.Mutex
	calls []string
}

func (r *fakeResolver) Resolve(_ context.Context, query string) (*models.PlaceResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, query)
	r.mu.Unlock()
	if err, ok := r.errs[query]; ok {
		return nil, err
	}
	return r.places[query], nil
}

func TestCleanJSONTextStripsMarkdownFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, cleanJSONText("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, cleanJSONText("```JSON\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, cleanJSONText("```\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, cleanJSONText(`  {"a":1}  `))
}

func TestParsePlanRejectsBadShapes(t *testing.T) {
	_, err := parsePlan("this is not json")
	require.Error(t, err)

	_, err = parsePlan(`{"tripTitle":"x","days":[]}`)
	require.ErrorIs(t, err, ErrNoDays)

	plan, err := parsePlan(`{"tripTitle":"x","days":[{"date":"2026-04-01","blocks":[]}]}`)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
}

func TestBuildPromptAppliesDefaults(t *testing.T) {
	prompt := buildPrompt(models.PlanRequest{
		Destination: "Lisbon",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-03",
	})
	require.Contains(t, prompt, "Destination: Lisbon")
	require.Contains(t, prompt, "Travel style: unspecified")
	require.Contains(t, prompt, "Pace: BALANCED")
	require.Contains(t, prompt, "Budget level: MID")
	require.Contains(t, prompt, "Must-visit places: none")
}

// Each suggested block gets exactly one of the three statuses, and only
// VALID blocks carry place data taken from the lookup.
func TestBuildPlanAssignsStatuses(t *testing.T) {
	lat, lng, rating := 38.7, -9.1, 4.6
	resolver := &fakeResolver{
		places: map[string]*models.PlaceResult{
			"belem tower lisbon": {PlaceID: "pid-1", Name: "Belem Tower",
				Lat: &lat, Lng: &lng, Rating: &rating, Address: "Av. Brasilia"},
		},
		errs: map[string]error{
			"broken lookup": errors.New("provider down"),
		},
	}
	pipeline := &Pipeline{Resolver: resolver}

	plan := &aiPlan{
		TripTitle: "Lisbon break",
		Days: []aiPlanDay{{
			Date: "2026-04-01",
			Blocks: []models.AiSuggestedBlock{
				{PlaceName: "Belem Tower", PlaceQueryHint: "belem tower lisbon"},
				{PlaceName: "Nowhere", PlaceQueryHint: "no such place"},
				{PlaceName: "Flaky", PlaceQueryHint: "broken lookup"},
				{PlaceName: ""},
			},
		}},
	}

	resp := pipeline.BuildPlan(context.Background(), models.PlanRequest{
		Destination: "Lisbon", StartDate: "2026-04-01", EndDate: "2026-04-01",
	}, plan)

	require.Equal(t, "Lisbon", resp.Destination)
	require.Len(t, resp.Days, 1)
	blocks := resp.Days[0].Blocks
	require.Len(t, blocks, 4)

	require.Equal(t, models.ValidationValid, blocks[0].ValidationStatus)
	require.Equal(t, "pid-1", blocks[0].PlaceID)
	require.Equal(t, &lat, blocks[0].Lat)
	require.Equal(t, "Av. Brasilia", blocks[0].Address)

	require.Equal(t, models.ValidationNotFound, blocks[1].ValidationStatus)
	require.Empty(t, blocks[1].PlaceID)

	require.Equal(t, models.ValidationError, blocks[2].ValidationStatus)
	require.Empty(t, blocks[2].PlaceID)

	// No query at all means no lookup was attempted.
	require.Equal(t, models.ValidationNotFound, blocks[3].ValidationStatus)
	require.NotContains(t, resolver.calls, "")
}

// A block whose hint is empty falls back to the place name for the lookup.
func TestValidateBlockFallsBackToPlaceName(t *testing.T) {
	lat, lng := 1.0, 2.0
	resolver := &fakeResolver{places: map[string]*models.PlaceResult{
		"Ramen Street": {PlaceID: "pid-2", Lat: &lat, Lng: &lng},
	}}
	pipeline := &Pipeline{Resolver: resolver}

	validated := pipeline.validateBlock(context.Background(), models.AiSuggestedBlock{
		PlaceName: "Ramen Street",
	})
	require.Equal(t, models.ValidationValid, validated.ValidationStatus)
	require.Equal(t, []string{"Ramen Street"}, resolver.calls)
}

// Block order within a day survives the concurrent fan-out.
func TestValidateDayPreservesOrder(t *testing.T) {
	resolver := &fakeResolver{places: map[string]*models.PlaceResult{}}
	pipeline := &Pipeline{Resolver: resolver}

	blocks := []models.AiSuggestedBlock{
		{PlaceName: "a"}, {PlaceName: "b"}, {PlaceName: "c"}, {PlaceName: "d"},
	}
	validated := pipeline.validateDay(context.Background(), blocks)
	require.Len(t, validated, 4)
	for i, block := range blocks {
		require.Equal(t, block.PlaceName, validated[i].PlaceName)
	}
}
