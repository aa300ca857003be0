package bookingRepo

import (
	"context"
	"time"

	"playfield/database"
	"playfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUser lists a user's bookings, newest first.
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// GetConfirmedByUserAndSlot finds the user's confirmed booking on a slot,
	// nil when absent.
	GetConfirmedByUserAndSlot(ctx context.Context, userID, slotID string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	Delete(ctx context.Context, id string) error
}

type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}
