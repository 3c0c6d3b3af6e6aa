package planner

import (
	"fmt"
	"strings"

	"tripmate/models"
)

const promptTemplate = `You are a travel itinerary design assistant. Follow these rules strictly.
- For each place, supply only placeName and placeQueryHint. Never include coordinates, addresses, ratings or opening hours.
- placeQueryHint must be a string usable directly in a Places text search.
- Suggest 3 to 5 blocks per day, each with a start time, an end time and a category.
- Reply with JSON only, no extra commentary.
User request:
Destination: %s
Travel dates: %s ~ %s
Travel style: %s
Pace: %s
Budget level: %s
Must-visit places: %s

Response schema:
{
  "tripTitle": "title",
  "summary": "summary",
  "days": [
    {
      "date": "YYYY-MM-DD",
      "title": "day title",
      "daySummary": "short description",
      "blocks": [
        {
          "startTime": "09:00",
          "endTime": "11:00",
          "category": "MORNING" | "LUNCH" | "AFTERNOON" | "DINNER" | "NIGHT",
          "placeName": "place name",
          "placeQueryHint": "keywords for a Places text search",
          "area": "main neighbourhood/area",
          "memo": "memo"
        }
      ]
    }
  ]
}`

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// buildPrompt renders the fixed instruction template for one plan request.
func buildPrompt(req models.PlanRequest) string {
	mustVisit := strings.Join(req.MustVisit, ", ")
	return fmt.Sprintf(promptTemplate,
		req.Destination,
		req.StartDate,
		req.EndDate,
		orDefault(req.TravelStyle, "unspecified"),
		orDefault(req.Pace, "BALANCED"),
		orDefault(req.BudgetLevel, "MID"),
		orDefault(mustVisit, "none"),
	)
}
