package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tripmate/models"
	"tripmate/planner"
	"tripmate/tripstate"
	"tripmate/utils"

	"github.com/julienschmidt/httprouter"
)

// tripStore is what the handlers need from the repository; tests swap in a
// fake backed by in-memory trips.
type tripStore interface {
	FetchTrips(ctx context.Context, userID string) ([]models.Trip, bool)
	CreateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip
	UpdateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip
	DeleteTrip(ctx context.Context, id string)
	FetchTrip(ctx context.Context, id string) (*models.Trip, bool)
	FetchTripBySlug(ctx context.Context, slug string) (*models.Trip, bool)
}

var repo tripStore = NewRepository()

// requireOwner rejects a caller who does not own the trip with 403 and
// reports whether the request may proceed. Sample-set trips served in
// degraded mode carry no real owner and are exempt; every mutating trip
// route must pass through here.
func requireOwner(w http.ResponseWriter, trip *models.Trip, degraded bool, userID string) bool {
	if !degraded && trip.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this trip")
		return false
	}
	return true
}

// GetTrips returns the caller's trips. The degraded flag tells the client it
// is looking at sample data because the store was unreachable or empty.
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	trips, degraded := repo.FetchTrips(ctx, userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"trips":    trips,
		"degraded": degraded,
	})
}

// CreateTrip persists a new trip for the authenticated user.
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip payload")
		return
	}
	if trip.Title == "" || trip.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title and destination are required")
		return
	}

	created := repo.CreateTrip(ctx, trip, utils.GetUserIDFromRequest(r))
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetTrip returns a single trip by id.
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"trip":     trip,
		"degraded": degraded,
	})
}

// UpdateTrip replaces a trip document wholesale. Days and blocks ride along
// inside the body, so client-side schedule edits land here too.
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip payload")
		return
	}
	trip.ID = ps.ByName("id")

	userID := utils.GetUserIDFromRequest(r)
	if existing, degraded := repo.FetchTrip(ctx, trip.ID); existing != nil && !requireOwner(w, existing, degraded, userID) {
		return
	}

	updated := repo.UpdateTrip(ctx, trip, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteTrip removes a trip and its nested schedule.
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	userID := utils.GetUserIDFromRequest(r)
	if existing, degraded := repo.FetchTrip(ctx, id); existing != nil && !requireOwner(w, existing, degraded, userID) {
		return
	}

	repo.DeleteTrip(ctx, id)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Trip deleted"})
}

// GetTripBySlug serves the public read-only share view. No authentication;
// knowing the slug is the authorization.
func GetTripBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, degraded := repo.FetchTripBySlug(ctx, ps.ByName("slug"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"trip":     trip,
		"degraded": degraded,
	})
}

// ApplyPlan merges a validated AI plan into an existing trip. Only VALID
// blocks are applied; if nothing qualifies the trip is left untouched.
func ApplyPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var plan models.PlanResponse
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	merged, added := planner.MergePlan(*trip, plan)
	if added == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"trip":    trip,
			"applied": 0,
			"message": "No validated blocks to apply",
		})
		return
	}

	updated := repo.UpdateTrip(ctx, merged, userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"trip":    updated,
		"applied": added,
	})
}

// GetBudget returns the trip's budget plan with its projected total.
func GetBudget(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, _ := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	days, nights := tripSpan(trip.StartDate, trip.EndDate)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"budget": trip.Budget,
		"total":  ComputeBudgetTotal(*trip),
		"days":   days,
		"nights": nights,
	})
}

// UpdateBudget replaces the trip's budget plan and recomputes the total.
func UpdateBudget(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var budget models.Budget
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid budget payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	trip.Budget = &budget
	trip.BudgetTotal = ComputeBudgetTotal(*trip)
	updated := repo.UpdateTrip(ctx, *trip, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// AddDay appends a day to the trip schedule. Two days on the same calendar
// date are rejected.
func AddDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var day models.Day
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day payload")
		return
	}
	if day.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "date is required")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}
	if trip.HasDate(day.Date) {
		utils.RespondWithError(w, http.StatusConflict, "A day with this date already exists")
		return
	}

	updated := repo.UpdateTrip(ctx, tripstate.AppendDay(*trip, day), userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// AddBlock appends a block to one day of the trip.
func AddBlock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var block models.Block
	if err := json.NewDecoder(r.Body).Decode(&block); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid block payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	next, ok := tripstate.AppendBlock(*trip, ps.ByName("dayId"), block)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Day not found")
		return
	}

	updated := repo.UpdateTrip(ctx, next, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// UpdateBlock patch-merges fields into one block.
func UpdateBlock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var patch tripstate.BlockPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid block payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	next, ok := tripstate.PatchBlock(*trip, ps.ByName("dayId"), ps.ByName("blockId"), patch)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Block not found")
		return
	}

	updated := repo.UpdateTrip(ctx, next, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteBlock removes one block from its day.
func DeleteBlock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	next, ok := tripstate.RemoveBlock(*trip, ps.ByName("dayId"), ps.ByName("blockId"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Block not found")
		return
	}

	updated := repo.UpdateTrip(ctx, next, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
