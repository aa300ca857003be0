package facility

import (
	"context"
	"io"

	facilityRepo "playfield/database/repository/facility"
	serviceRepo "playfield/database/repository/service"
	timeslotRepo "playfield/database/repository/timeslot"
	"playfield/models"
	"playfield/services/storage"
)

// CreateFacilityRequest registers a new facility; it starts pending until a
// super-admin approves it.
type CreateFacilityRequest struct {
	Name         string                         `json:"name" binding:"required"`
	Description  string                         `json:"description"`
	Address      string                         `json:"address" binding:"required"`
	Categories   []string                       `json:"categories"`
	OpeningHours map[string]models.OpeningHours `json:"openingHours"`
}

// UpdateFacilityRequest mutates editable facility fields. Nil means "leave as is".
type UpdateFacilityRequest struct {
	Name         *string                         `json:"name"`
	Description  *string                         `json:"description"`
	Address      *string                         `json:"address"`
	Categories   *[]string                       `json:"categories"`
	OpeningHours *map[string]models.OpeningHours `json:"openingHours"`
}

// CreateServiceRequest adds a bookable offering to a facility.
type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category"`
	Price           int64  `json:"price" binding:"required"`
	Currency        string `json:"currency" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	Capacity        int    `json:"capacity" binding:"required"`
}

// UpdateServiceRequest mutates editable service fields. Duration and capacity
// changes only apply to slots created afterwards.
type UpdateServiceRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    *int64  `json:"price"`
	IsActive *bool   `json:"isActive"`
}

// FacilityService defines business logic for facility and service management.
type FacilityService interface {
	// ListPublic returns approved facilities, served from cache when warm.
	ListPublic(ctx context.Context) ([]models.Facility, error)
	Get(ctx context.Context, actor *models.Account, facilityID string) (*models.Facility, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Facility, error)
	ListByStatus(ctx context.Context, status string) ([]models.Facility, error)
	Create(ctx context.Context, actor *models.Account, req CreateFacilityRequest) (*models.Facility, error)
	Update(ctx context.Context, actor *models.Account, facilityID string, req UpdateFacilityRequest) (*models.Facility, error)
	// Delete cascades to the facility's services and slots; it is blocked
	// while any slot still holds bookings.
	Delete(ctx context.Context, actor *models.Account, facilityID string) error
	UploadImage(ctx context.Context, actor *models.Account, facilityID string, file io.Reader) (string, error)

	// Approval workflow, super-admin only (enforced at the route).
	Approve(ctx context.Context, facilityID string) (*models.Facility, error)
	Reject(ctx context.Context, facilityID, reason string) (*models.Facility, error)
	Suspend(ctx context.Context, facilityID string) (*models.Facility, error)

	// Service management under a facility.
	ListServices(ctx context.Context, facilityID string) ([]models.Service, error)
	CreateService(ctx context.Context, actor *models.Account, facilityID string, req CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, actor *models.Account, serviceID string, req UpdateServiceRequest) (*models.Service, error)
	// DeleteService cascades to the service's slots; blocked while booked
	// slots exist.
	DeleteService(ctx context.Context, actor *models.Account, serviceID string) error
}

// DefaultFacilityService is the production implementation.
type DefaultFacilityService struct {
	Repo     facilityRepo.FacilityRepository
	Services serviceRepo.ServiceRepository
	Slots    timeslotRepo.TimeSlotRepository
	Storage  storage.StorageService
}
