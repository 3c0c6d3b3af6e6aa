package trips

import (
	"context"
	"log"
	"time"

	"tripmate/db"
	"tripmate/mockdata"
	"tripmate/models"
	"tripmate/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository translates between the trip store and in-memory trip records.
// Every operation tolerates the store being unreachable: reads degrade to
// the fixed sample set, writes degrade to returning the input, and failures
// are logged rather than surfaced. The product must stay demoable with no
// credentials configured.
//
// There is no conflict detection: two updates to the same trip race and the
// last write wins.
type Repository struct {
	col *mongo.Collection
}

func NewRepository() *Repository {
	return &Repository{col: db.TripsCollection}
}

// NewRepositoryWithCollection exists for tests; a nil collection behaves as
// an unreachable store.
func NewRepositoryWithCollection(col *mongo.Collection) *Repository {
	return &Repository{col: col}
}

func normalizeTrip(trip models.Trip, userID string) models.Trip {
	now := time.Now().UTC().Format(time.RFC3339)
	if trip.CreatedAt == "" {
		trip.CreatedAt = now
	}
	if trip.UpdatedAt == "" {
		trip.UpdatedAt = now
	}
	if trip.UserID == "" {
		trip.UserID = userID
	}
	if trip.UserID == "" {
		trip.UserID = "anonymous-user"
	}
	if trip.Status == "" {
		trip.Status = models.TripStatusDraft
	}
	return trip
}

func fallbackID() string {
	return "trip-" + utils.GenerateRandomString(13)
}

// FetchTrips returns all trips for a user. A failed or empty store query
// returns the sample set with degraded=true; it never returns an error.
func (r *Repository) FetchTrips(ctx context.Context, userID string) ([]models.Trip, bool) {
	if r.col == nil {
		return mockdata.SampleTrips(), true
	}

	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		log.Println("trip store fetch failed, serving sample trips:", err)
		return mockdata.SampleTrips(), true
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	for cursor.Next(ctx) {
		var trip models.Trip
		if err := cursor.Decode(&trip); err == nil {
			trips = append(trips, normalizeTrip(trip, userID))
		}
	}

	if len(trips) == 0 {
		return mockdata.SampleTrips(), true
	}
	return trips, false
}

// CreateTrip stamps timestamps and a default public slug, persists, and
// returns the persisted record. On store failure the input is returned with
// a locally generated id instead of an error.
func (r *Repository) CreateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip {
	trip = normalizeTrip(trip, userID)
	if trip.ID == "" {
		trip.ID = fallbackID()
	}
	if trip.PublicSlug == "" {
		trip.PublicSlug = trip.ID
	}

	if r.col == nil {
		return trip
	}
	if _, err := r.col.InsertOne(ctx, trip); err != nil {
		log.Println("trip store insert failed, keeping local record:", err)
	}
	return trip
}

// UpdateTrip stamps UpdatedAt and upserts the document. CreatedAt is never
// taken from the request; the stored value wins, and an upsert that inserts
// stamps it fresh. On failure it returns the input unpersisted; the caller's
// in-memory state and the store can diverge, which is a deliberate
// availability-over-durability trade.
func (r *Repository) UpdateTrip(ctx context.Context, trip models.Trip, userID string) models.Trip {
	now := time.Now().UTC().Format(time.RFC3339)
	trip = normalizeTrip(trip, userID)
	trip.UpdatedAt = now
	trip.CreatedAt = ""

	if r.col == nil {
		return trip
	}

	// With CreatedAt empty its omitempty bson tag keeps it out of $set, so
	// the stored creation time survives every update.
	update := bson.M{
		"$set":         trip,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, bson.M{"id": trip.ID}, update, opts); err != nil {
		log.Println("trip store update failed:", err)
	}
	return trip
}

// DeleteTrip removes the trip document. Days and blocks are nested inside
// it, so the whole schedule goes in one atomic delete. Failures are logged,
// not surfaced.
func (r *Repository) DeleteTrip(ctx context.Context, id string) {
	if r.col == nil {
		return
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		log.Println("trip store delete failed:", err)
	}
}

// FetchTripBySlug resolves a trip for unauthenticated sharing, matching
// publicSlug first and id second, then the sample set. Returns nil when
// nothing matches anywhere.
func (r *Repository) FetchTripBySlug(ctx context.Context, slug string) (*models.Trip, bool) {
	if r.col != nil {
		var trip models.Trip
		err := r.col.FindOne(ctx, bson.M{"$or": []bson.M{
			{"publicSlug": slug},
			{"id": slug},
		}}).Decode(&trip)
		if err == nil {
			trip = normalizeTrip(trip, "")
			return &trip, false
		}
		if err != mongo.ErrNoDocuments {
			log.Println("trip store slug lookup failed, checking sample trips:", err)
		}
	}

	for _, trip := range mockdata.SampleTrips() {
		if trip.PublicSlug == slug || trip.ID == slug {
			t := normalizeTrip(trip, "")
			return &t, true
		}
	}
	if detail := mockdata.SamplePlanDetail(); detail.PublicSlug == slug || detail.ID == slug {
		t := normalizeTrip(detail, "")
		return &t, true
	}
	return nil, true
}

// FetchTrip resolves a single trip by id, falling back to the sample set.
func (r *Repository) FetchTrip(ctx context.Context, id string) (*models.Trip, bool) {
	if r.col != nil {
		var trip models.Trip
		if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err == nil {
			trip = normalizeTrip(trip, "")
			return &trip, false
		}
	}
	for _, trip := range mockdata.SampleTrips() {
		if trip.ID == id {
			t := normalizeTrip(trip, "")
			return &t, true
		}
	}
	if detail := mockdata.SamplePlanDetail(); detail.ID == id {
		t := normalizeTrip(detail, "")
		return &t, true
	}
	return nil, true
}
