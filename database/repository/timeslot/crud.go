package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playfield/models"
)

func (r *MongoTimeSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot already exists at %s %s: %w", slot.Date, slot.StartTime, err)
		}
		return fmt.Errorf("failed to create timeslot: %w", err)
	}
	return nil
}

func (r *MongoTimeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.TimeSlot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *MongoTimeSlotRepo) UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update timeslot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTimeSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("failed to delete timeslot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTimeSlotRepo) DeleteByFacility(ctx context.Context, facilityID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"facilityId": facilityID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete timeslots for facility %s: %w", facilityID, err)
	}
	return res.DeletedCount, nil
}

func (r *MongoTimeSlotRepo) DeleteByService(ctx context.Context, serviceID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"serviceId": serviceID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete timeslots for service %s: %w", serviceID, err)
	}
	return res.DeletedCount, nil
}

// CountBooked counts slots under the given owner field (facilityId or
// serviceId) that still hold bookings. Used by the cascade-delete guard.
func (r *MongoTimeSlotRepo) CountBooked(ctx context.Context, field, value string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{field: value, "bookedCount": bson.M{"$gt": 0}})
	if err != nil {
		return 0, fmt.Errorf("failed to count booked timeslots: %w", err)
	}
	return n, nil
}
