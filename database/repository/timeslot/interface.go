package timeslotRepo

import (
	"context"
	"errors"

	"playfield/database"
	"playfield/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrConditionFailed is returned when a conditional update matched no
// document: the slot is missing, inactive, or its capacity predicate failed.
// Callers re-read the slot to report the precise cause.
var ErrConditionFailed = errors.New("timeslot conditional update matched no document")

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *models.TimeSlot) error
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, int64, error)
	GetByFacilityAndDate(ctx context.Context, facilityID, date string) ([]models.TimeSlot, error)
	UpdateFields(ctx context.Context, slotID string, fields map[string]interface{}) error
	DeleteByID(ctx context.Context, slotID string) error
	DeleteByFacility(ctx context.Context, facilityID string) (int64, error)
	DeleteByService(ctx context.Context, serviceID string) (int64, error)
	CountBooked(ctx context.Context, field, value string) (int64, error)

	// Atomic booking-guard operations; see aggregates.go.
	IncrementBooked(ctx context.Context, slotID string, quantity, capacity int) error
	DecrementBooked(ctx context.Context, slotID string, quantity, capacity int) error
}

type MongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() *MongoTimeSlotRepo {
	return &MongoTimeSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
}
