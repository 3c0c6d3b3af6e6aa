// Package tripstate is the client-side trip state: a reducer over six
// action kinds, an explicit store object that owns it, and the derived
// mutation helpers the editing surface calls. The store takes its
// repository as a dependency and keeps an immutable action log, so it is
// fully testable without a UI runtime.
package tripstate

import "tripmate/models"

// State is the whole client state shape.
type State struct {
	Trips          []models.Trip
	SelectedTripID string
	Loading        bool
}

type ActionType string

const (
	ActionSetTrips   ActionType = "setTrips"
	ActionSetLoading ActionType = "setLoading"
	ActionAddTrip    ActionType = "addTrip"
	ActionUpdateTrip ActionType = "updateTrip"
	ActionDeleteTrip ActionType = "deleteTrip"
	ActionSelectTrip ActionType = "selectTrip"
)

// Action carries one state mutation. Only the fields relevant to its type
// are set.
type Action struct {
	Type    ActionType
	Trips   []models.Trip
	Trip    *models.Trip
	ID      string
	Loading bool
}

// Reduce applies one action to a state and returns the next state. It never
// mutates its input; unknown action types return the state unchanged.
func Reduce(state State, action Action) State {
	switch action.Type {
	case ActionSetTrips:
		state.Trips = action.Trips
	case ActionSetLoading:
		state.Loading = action.Loading
	case ActionAddTrip:
		if action.Trip != nil {
			trips := make([]models.Trip, 0, len(state.Trips)+1)
			trips = append(trips, *action.Trip)
			trips = append(trips, state.Trips...)
			state.Trips = trips
		}
	case ActionUpdateTrip:
		if action.Trip != nil {
			trips := make([]models.Trip, len(state.Trips))
			copy(trips, state.Trips)
			for i := range trips {
				if trips[i].ID == action.Trip.ID {
					trips[i] = *action.Trip
				}
			}
			state.Trips = trips
		}
	case ActionDeleteTrip:
		trips := make([]models.Trip, 0, len(state.Trips))
		for _, trip := range state.Trips {
			if trip.ID != action.ID {
				trips = append(trips, trip)
			}
		}
		state.Trips = trips
	case ActionSelectTrip:
		state.SelectedTripID = action.ID
	}
	return state
}
