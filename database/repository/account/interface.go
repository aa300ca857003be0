package accountRepo

import (
	"context"
	"time"

	"playfield/database"
	"playfield/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address, nil when absent.
	GetByEmail(email string) (*models.Account, error)
	// GetByTokenHash resolves the account holding the given auth token hash.
	GetByTokenHash(tokenHash string) (*models.Account, error)
	// GetAll retrieves all accounts with sensitive fields excluded.
	GetAll() ([]models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// UpdateSetDocument applies a partial $set update.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}

type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo constructs a new MongoDB AccountRepository.
func NewMongoAccountRepo() *MongoAccountRepo {
	return &MongoAccountRepo{
		coll: database.DB().Collection("accounts"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
