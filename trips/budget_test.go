package trips

import (
	"testing"

	"tripmate/models"

	"github.com/stretchr/testify/require"
)

func TestTripSpan(t *testing.T) {
	days, nights := tripSpan("2026-04-01", "2026-04-04")
	require.Equal(t, 4, days)
	require.Equal(t, 3, nights)

	// single-day trip: one day, zero nights
	days, nights = tripSpan("2026-04-01", "2026-04-01")
	require.Equal(t, 1, days)
	require.Equal(t, 0, nights)

	// garbage and reversed ranges collapse to a single day
	days, nights = tripSpan("not-a-date", "2026-04-01")
	require.Equal(t, 1, days)
	require.Equal(t, 0, nights)

	days, nights = tripSpan("2026-04-05", "2026-04-01")
	require.Equal(t, 1, days)
	require.Equal(t, 0, nights)
}

func TestComputeBudgetTotal(t *testing.T) {
	trip := models.Trip{
		StartDate: "2026-04-01",
		EndDate:   "2026-04-04",
		Budget: &models.Budget{
			LodgingPerNight: 100,
			DailyFood:       30,
			Transport:       80,
			Etc:             40,
		},
	}
	// 3 nights lodging + 4 days food + one-off transport and etc
	require.Equal(t, 100*3+30*4+80+40, ComputeBudgetTotal(trip))

	trip.Budget = nil
	require.Equal(t, 0, ComputeBudgetTotal(trip))
}
