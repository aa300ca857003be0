package serviceRepo

import (
	"context"
	"time"

	"playfield/database"
	"playfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	// GetByFacility lists all services offered at one facility.
	GetByFacility(facilityID string) ([]models.Service, error)
	Create(service *models.Service) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	// DeleteByFacility removes every service of a facility (cascade path).
	DeleteByFacility(facilityID string) (int64, error)
}

type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() *MongoServiceRepo {
	return &MongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
