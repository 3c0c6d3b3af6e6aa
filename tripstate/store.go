package tripstate

import (
	"context"
	"sync"

	"tripmate/models"
)

// Repository is the slice of trip persistence the store needs. It is
// injected so tests can run against a fake.
type Repository interface {
	FetchTrips(ctx context.Context, userID string) ([]models.Trip, bool)
	CreateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip
	UpdateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip
	DeleteTrip(ctx context.Context, id string)
}

// Store owns the trip state. Every mutation goes through Dispatch, which
// records the action before reducing it, so the log is a faithful replayable
// history of the session. Mutating methods update local state first and
// mirror to the repository after; repository failures never roll the state
// back.
type Store struct {
	mu      sync.Mutex
	state   State
	actions []Action
	repo    Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Dispatch records and applies one action.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	s.state = Reduce(s.state, action)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Actions returns a copy of the action log.
func (s *Store) Actions() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]Action, len(s.actions))
	copy(actions, s.actions)
	return actions
}

// Trip looks a trip up in the current state.
func (s *Store) Trip(id string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, trip := range s.state.Trips {
		if trip.ID == id {
			return trip, true
		}
	}
	return models.Trip{}, false
}

// Load fetches the user's trips into the store and reports whether the
// repository served degraded sample data.
func (s *Store) Load(ctx context.Context, userID string) bool {
	s.Dispatch(Action{Type: ActionSetLoading, Loading: true})
	trips, degraded := s.repo.FetchTrips(ctx, userID)
	s.Dispatch(Action{Type: ActionSetTrips, Trips: trips})
	s.Dispatch(Action{Type: ActionSetLoading, Loading: false})
	return degraded
}

// Create persists a new trip and prepends it to the state.
func (s *Store) Create(ctx context.Context, trip models.Trip, userID string) models.Trip {
	created := s.repo.CreateTrip(ctx, trip, userID)
	s.Dispatch(Action{Type: ActionAddTrip, Trip: &created})
	return created
}

// Update replaces a trip in the state and mirrors it to the repository.
func (s *Store) Update(ctx context.Context, trip models.Trip) models.Trip {
	s.Dispatch(Action{Type: ActionUpdateTrip, Trip: &trip})
	return s.repo.UpdateTrip(ctx, trip, trip.UserID)
}

// Delete drops a trip from the state and the repository.
func (s *Store) Delete(ctx context.Context, id string) {
	s.Dispatch(Action{Type: ActionDeleteTrip, ID: id})
	s.repo.DeleteTrip(ctx, id)
}

// Select marks a trip as the one being edited.
func (s *Store) Select(id string) {
	s.Dispatch(Action{Type: ActionSelectTrip, ID: id})
}

// AddPlaceToTrip adds a search result to the trip's first day, creating the
// day when the trip has none. Returns false for an unknown trip.
func (s *Store) AddPlaceToTrip(ctx context.Context, tripID string, place PlaceSelection) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	s.Update(ctx, AppendPlace(trip, place))
	return true
}

// UpdateBudget replaces the trip's budget plan.
func (s *Store) UpdateBudget(ctx context.Context, tripID string, budget models.Budget) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	trip.Budget = &budget
	s.Update(ctx, trip)
	return true
}

// AddDay appends a day to the trip's schedule.
func (s *Store) AddDay(ctx context.Context, tripID string, day models.Day) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	s.Update(ctx, AppendDay(trip, day))
	return true
}

// AddBlockToDay appends a block to one day. A missing trip or day is a
// silent no-op reported as false.
func (s *Store) AddBlockToDay(ctx context.Context, tripID, dayID string, block models.Block) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	next, ok := AppendBlock(trip, dayID, block)
	if !ok {
		return false
	}
	s.Update(ctx, next)
	return true
}

// UpdateBlock patch-merges a partial update into one block.
func (s *Store) UpdateBlock(ctx context.Context, tripID, dayID, blockID string, patch BlockPatch) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	next, ok := PatchBlock(trip, dayID, blockID, patch)
	if !ok {
		return false
	}
	s.Update(ctx, next)
	return true
}

// DeleteBlock removes one block from its day.
func (s *Store) DeleteBlock(ctx context.Context, tripID, dayID, blockID string) bool {
	trip, ok := s.Trip(tripID)
	if !ok {
		return false
	}
	next, ok := RemoveBlock(trip, dayID, blockID)
	if !ok {
		return false
	}
	s.Update(ctx, next)
	return true
}
