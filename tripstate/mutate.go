package tripstate

import (
	"time"

	"tripmate/models"
	"tripmate/utils"
)

// PlaceSelection is the slice of a place search result the editing surface
// hands over when adding a place to a trip.
type PlaceSelection struct {
	Name    string
	Address string
	PlaceID string
	Lat     *float64
	Lng     *float64
	Rating  *float64
}

// BlockPatch carries a partial block update; nil fields are left untouched.
type BlockPatch struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Title     *string `json:"title"`
	Memo      *string `json:"memo"`
	Category  *string `json:"category"`
}

// AppendDay returns the trip with the day appended. Rejecting duplicate
// dates is the caller's job.
func AppendDay(trip models.Trip, day models.Day) models.Trip {
	if day.ID == "" {
		day.ID = "day-" + utils.GetUUID()
	}
	day.TripID = trip.ID
	if day.Blocks == nil {
		day.Blocks = []models.Block{}
	}

	days := make([]models.Day, 0, len(trip.Days)+1)
	days = append(days, trip.Days...)
	trip.Days = append(days, day)
	return trip
}

// AppendBlock appends a block to the day with the given id. Returns false
// when the day is not found; the trip is then unchanged.
func AppendBlock(trip models.Trip, dayID string, block models.Block) (models.Trip, bool) {
	days := make([]models.Day, len(trip.Days))
	copy(days, trip.Days)

	for i := range days {
		if days[i].ID != dayID {
			continue
		}
		if block.ID == "" {
			block.ID = "block-" + utils.GetUUID()
		}
		block.TripID = trip.ID
		block.DayID = dayID
		if block.Source == "" {
			block.Source = models.SourceUser
		}
		blocks := make([]models.Block, 0, len(days[i].Blocks)+1)
		blocks = append(blocks, days[i].Blocks...)
		days[i].Blocks = append(blocks, block)
		trip.Days = days
		return trip, true
	}
	return trip, false
}

// PatchBlock patch-merges a partial update into one block.
func PatchBlock(trip models.Trip, dayID, blockID string, patch BlockPatch) (models.Trip, bool) {
	days := make([]models.Day, len(trip.Days))
	copy(days, trip.Days)

	for i := range days {
		if days[i].ID != dayID {
			continue
		}
		blocks := make([]models.Block, len(days[i].Blocks))
		copy(blocks, days[i].Blocks)
		for j := range blocks {
			if blocks[j].ID != blockID {
				continue
			}
			if patch.StartTime != nil {
				blocks[j].StartTime = *patch.StartTime
			}
			if patch.EndTime != nil {
				blocks[j].EndTime = *patch.EndTime
			}
			if patch.Title != nil {
				blocks[j].Title = *patch.Title
			}
			if patch.Memo != nil {
				blocks[j].Memo = *patch.Memo
			}
			if patch.Category != nil {
				blocks[j].Category = *patch.Category
			}
			days[i].Blocks = blocks
			trip.Days = days
			return trip, true
		}
		return trip, false
	}
	return trip, false
}

// RemoveBlock filters one block out of its day.
func RemoveBlock(trip models.Trip, dayID, blockID string) (models.Trip, bool) {
	days := make([]models.Day, len(trip.Days))
	copy(days, trip.Days)

	for i := range days {
		if days[i].ID != dayID {
			continue
		}
		blocks := make([]models.Block, 0, len(days[i].Blocks))
		removed := false
		for _, block := range days[i].Blocks {
			if block.ID == blockID {
				removed = true
				continue
			}
			blocks = append(blocks, block)
		}
		days[i].Blocks = blocks
		trip.Days = days
		return trip, removed
	}
	return trip, false
}

// AppendPlace appends a new block for the place to the trip's first day,
// creating that day if none exists. The block time is a fixed placeholder
// until the user schedules it.
func AppendPlace(trip models.Trip, place PlaceSelection) models.Trip {
	memo := place.Address
	if memo == "" {
		memo = "Added place"
	}
	block := models.Block{
		ID:        "block-" + utils.GetUUID(),
		TripID:    trip.ID,
		StartTime: "00:00",
		EndTime:   "00:00",
		Title:     place.Name,
		Memo:      memo,
		PlaceID:   place.PlaceID,
		Lat:       place.Lat,
		Lng:       place.Lng,
		Address:   place.Address,
		Rating:    place.Rating,
		Source:    models.SourceUser,
	}

	if len(trip.Days) == 0 {
		date := trip.StartDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		day := models.Day{
			ID:     "day-" + utils.GetUUID(),
			TripID: trip.ID,
			Date:   date,
		}
		block.DayID = day.ID
		day.Blocks = []models.Block{block}
		trip.Days = []models.Day{day}
		return trip
	}

	days := make([]models.Day, len(trip.Days))
	copy(days, trip.Days)
	block.DayID = days[0].ID
	blocks := make([]models.Block, 0, len(days[0].Blocks)+1)
	blocks = append(blocks, days[0].Blocks...)
	days[0].Blocks = append(blocks, block)
	trip.Days = days
	return trip
}
