package trips

import (
	"tripmate/models"
	"tripmate/utils"
)

// tripSpan computes the inclusive day count and night count of a trip from
// its date range. Unparseable or reversed ranges count as a single day.
func tripSpan(startDate, endDate string) (days, nights int) {
	start := utils.ParseDate(startDate)
	end := utils.ParseDate(endDate)
	if start == nil || end == nil || end.Before(*start) {
		return 1, 0
	}
	days = int(end.Sub(*start).Hours()/24) + 1
	return days, days - 1
}

// ComputeBudgetTotal projects a trip's planned budget over its date range:
// lodging is charged per night, food per day, transport and etc once.
func ComputeBudgetTotal(trip models.Trip) int {
	if trip.Budget == nil {
		return 0
	}
	days, nights := tripSpan(trip.StartDate, trip.EndDate)
	b := trip.Budget
	return b.LodgingPerNight*nights + b.DailyFood*days + b.Transport + b.Etc
}
