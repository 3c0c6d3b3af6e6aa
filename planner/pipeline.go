// Package planner turns a natural-language travel request into a day-by-day
// plan whose place suggestions have each been independently resolved against
// the Places provider. AI-supplied coordinates, ratings and addresses are
// never trusted; only the lookup's own data is attached.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"tripmate/models"
)

// ErrNoDays marks a generation result whose parsed structure has no days.
var ErrNoDays = errors.New("generated plan has no days")

// PlaceResolver resolves a free-text query to its best place hit, nil when
// nothing matches.
type PlaceResolver interface {
	Resolve(ctx context.Context, query string) (*models.PlaceResult, error)
}

// aiPlan is the shape the generative provider is instructed to return.
type aiPlan struct {
	TripTitle string      `json:"tripTitle"`
	Summary   string      `json:"summary"`
	Days      []aiPlanDay `json:"days"`
}

type aiPlanDay struct {
	Date       string                    `json:"date"`
	Title      string                    `json:"title"`
	DaySummary string                    `json:"daySummary"`
	Blocks     []models.AiSuggestedBlock `json:"blocks"`
}

// parsePlan parses the cleaned generation output and checks its shape.
func parsePlan(cleaned string) (*aiPlan, error) {
	var plan aiPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, err
	}
	if len(plan.Days) == 0 {
		return nil, ErrNoDays
	}
	return &plan, nil
}

// Pipeline validates AI-suggested blocks through a place resolver.
type Pipeline struct {
	Resolver PlaceResolver
}

// validateBlock resolves one suggested block. Resolver failures are
// swallowed into an ERROR status so one bad lookup never aborts its
// siblings or the request.
func (p *Pipeline) validateBlock(ctx context.Context, block models.AiSuggestedBlock) models.ValidatedBlock {
	validated := models.ValidatedBlock{AiSuggestedBlock: block}

	query := block.PlaceQueryHint
	if query == "" {
		query = block.PlaceName
	}
	if query == "" {
		validated.ValidationStatus = models.ValidationNotFound
		return validated
	}

	place, err := p.Resolver.Resolve(ctx, query)
	if err != nil {
		log.Println("place validation failed for", query, ":", err)
		validated.ValidationStatus = models.ValidationError
		return validated
	}
	if place == nil {
		validated.ValidationStatus = models.ValidationNotFound
		return validated
	}

	validated.ValidationStatus = models.ValidationValid
	validated.PlaceID = place.PlaceID
	validated.Lat = place.Lat
	validated.Lng = place.Lng
	validated.Rating = place.Rating
	validated.Address = place.Address
	return validated
}

// validateDay fans out one lookup per block and joins them, preserving
// block order. Failures stay isolated per block.
func (p *Pipeline) validateDay(ctx context.Context, blocks []models.AiSuggestedBlock) []models.ValidatedBlock {
	validated := make([]models.ValidatedBlock, len(blocks))

	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		go func(i int, block models.AiSuggestedBlock) {
			defer wg.Done()
			validated[i] = p.validateBlock(ctx, block)
		}(i, block)
	}
	wg.Wait()

	return validated
}

// BuildPlan validates every day of the parsed plan. Days run sequentially,
// the blocks of each day concurrently; all statuses are kept in the result
// so the caller can show validation outcomes.
func (p *Pipeline) BuildPlan(ctx context.Context, req models.PlanRequest, plan *aiPlan) models.PlanResponse {
	days := make([]models.PlanDay, 0, len(plan.Days))
	for _, day := range plan.Days {
		days = append(days, models.PlanDay{
			Date:       day.Date,
			Title:      day.Title,
			DaySummary: day.DaySummary,
			Blocks:     p.validateDay(ctx, day.Blocks),
		})
	}

	return models.PlanResponse{
		TripTitle:   plan.TripTitle,
		Summary:     plan.Summary,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
	}
}
