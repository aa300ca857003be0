package facilityRepo

import (
	"fmt"
	"time"

	"playfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoFacilityRepo) Create(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	facility.CreatedAt = now
	facility.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, facility); err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

func (r *MongoFacilityRepo) Update(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	facility.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": facility.ID}, bson.M{"$set": facility})
	if err != nil {
		return fmt.Errorf("failed to update facility with id %s: %w", facility.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", facility.ID)
	}
	return nil
}

func (r *MongoFacilityRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update facility with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}

func (r *MongoFacilityRepo) PushImage(id, url string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"images": url},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add image to facility %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}

func (r *MongoFacilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete facility with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}

func (r *MongoFacilityRepo) GetByID(id string) (*models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var facility models.Facility
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&facility); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch facility with id %s: %w", id, err)
	}
	return &facility, nil
}

func (r *MongoFacilityRepo) GetByStatus(status string) ([]models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facilities with status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("error decoding facilities: %w", err)
	}
	return facilities, nil
}

func (r *MongoFacilityRepo) GetByOwner(ownerID string) ([]models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facilities for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("error decoding facilities: %w", err)
	}
	return facilities, nil
}
