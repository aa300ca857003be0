package facilityRepo

import (
	"context"
	"time"

	"playfield/database"
	"playfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FacilityRepository defines methods for facility data access.
type FacilityRepository interface {
	GetByID(id string) (*models.Facility, error)
	// GetByStatus lists facilities in one lifecycle state.
	GetByStatus(status string) ([]models.Facility, error)
	// GetByOwner lists the facilities created by one admin account.
	GetByOwner(ownerID string) ([]models.Facility, error)
	Create(facility *models.Facility) error
	Update(facility *models.Facility) error
	// UpdateSetDocument applies a partial $set update.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// PushImage appends an uploaded image URL.
	PushImage(id, url string) error
	Delete(id string) error
}

type MongoFacilityRepo struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepo constructs a new MongoDB FacilityRepository.
func NewMongoFacilityRepo() *MongoFacilityRepo {
	return &MongoFacilityRepo{
		coll: database.DB().Collection("facilities"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
