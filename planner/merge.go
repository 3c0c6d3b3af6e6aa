package planner

import (
	"tripmate/models"
	"tripmate/utils"
)

// MergePlan merges a validated plan into a trip and reports how many blocks
// were added. Only VALID blocks are taken; a plan day with no VALID blocks
// contributes nothing and creates no day. Existing days are matched by
// exact calendar-date equality; their title/summary are backfilled only
// when absent. added == 0 means nothing to apply and the trip is returned
// unchanged.
func MergePlan(trip models.Trip, plan models.PlanResponse) (models.Trip, int) {
	updatedDays := make([]models.Day, len(trip.Days))
	copy(updatedDays, trip.Days)

	added := 0
	for _, planDay := range plan.Days {
		var validBlocks []models.ValidatedBlock
		for _, block := range planDay.Blocks {
			if block.ValidationStatus == models.ValidationValid {
				validBlocks = append(validBlocks, block)
			}
		}
		if len(validBlocks) == 0 {
			continue
		}

		existingIndex := -1
		for i := range updatedDays {
			if updatedDays[i].Date == planDay.Date {
				existingIndex = i
				break
			}
		}

		var baseDay models.Day
		if existingIndex >= 0 {
			baseDay = updatedDays[existingIndex]
			// Appending through the fetched slice could write into the
			// caller's backing array; work on a copy.
			blocks := make([]models.Block, len(baseDay.Blocks), len(baseDay.Blocks)+len(validBlocks))
			copy(blocks, baseDay.Blocks)
			baseDay.Blocks = blocks
		} else {
			baseDay = models.Day{
				ID:     "day-" + utils.GetUUID(),
				TripID: trip.ID,
				Date:   planDay.Date,
			}
		}

		for _, block := range validBlocks {
			memo := block.Memo
			if memo == "" {
				memo = block.PlaceQueryHint
			}
			baseDay.Blocks = append(baseDay.Blocks, models.Block{
				ID:             "ai-" + utils.GetUUID(),
				TripID:         trip.ID,
				DayID:          baseDay.ID,
				StartTime:      block.StartTime,
				EndTime:        block.EndTime,
				Title:          block.PlaceName,
				Memo:           memo,
				Category:       block.Category,
				PlaceID:        block.PlaceID,
				Lat:            block.Lat,
				Lng:            block.Lng,
				Address:        block.Address,
				Rating:         block.Rating,
				Source:         models.SourceAIValidated,
				PlaceQueryHint: block.PlaceQueryHint,
			})
			added++
		}

		if baseDay.Title == "" {
			baseDay.Title = planDay.Title
		}
		if baseDay.Summary == "" {
			baseDay.Summary = planDay.DaySummary
		}

		if existingIndex >= 0 {
			updatedDays[existingIndex] = baseDay
		} else {
			updatedDays = append(updatedDays, baseDay)
		}
	}

	if added == 0 {
		return trip, 0
	}

	trip.Days = updatedDays
	if trip.Title == "" {
		trip.Title = plan.TripTitle
	}
	if trip.Summary == "" {
		trip.Summary = plan.Summary
	}
	return trip, added
}
