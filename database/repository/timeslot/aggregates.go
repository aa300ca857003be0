package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IncrementBooked performs the capacity check-and-increment as one
// conditional update: the capacity predicate lives in the filter, so two
// concurrent bookings can never both pass it. IsBooked is recomputed in the
// same pipeline from the post-increment count.
func (r *MongoTimeSlotRepo) IncrementBooked(ctx context.Context, slotID string, quantity, capacity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":          slotID,
		"isActive":    true,
		"bookedCount": bson.M{"$lte": capacity - quantity},
	}

	newCount := bson.M{"$add": bson.A{"$bookedCount", quantity}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"bookedCount": newCount,
			"isBooked":    bson.M{"$gte": bson.A{newCount, capacity}},
			"updatedAt":   "$$NOW",
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment booked count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}

// DecrementBooked releases quantity units, refusing to go below zero.
func (r *MongoTimeSlotRepo) DecrementBooked(ctx context.Context, slotID string, quantity, capacity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":          slotID,
		"bookedCount": bson.M{"$gte": quantity},
	}

	newCount := bson.M{"$subtract": bson.A{"$bookedCount", quantity}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"bookedCount": newCount,
			"isBooked":    bson.M{"$gte": bson.A{newCount, capacity}},
			"updatedAt":   "$$NOW",
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement booked count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}
