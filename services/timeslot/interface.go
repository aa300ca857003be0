package timeslot

import (
	"context"

	facilityRepo "playfield/database/repository/facility"
	serviceRepo "playfield/database/repository/service"
	timeslotRepo "playfield/database/repository/timeslot"
	"playfield/models"
)

// CreateSlotRequest creates a single slot. EndTime may be omitted, in which
// case it is derived from the service duration.
type CreateSlotRequest struct {
	FacilityID string `json:"facilityId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime"`
}

// UpdateSlotRequest mutates editable slot fields. Nil means "leave as is".
type UpdateSlotRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	IsActive  *bool   `json:"isActive"`
}

// TimeSlotService defines business logic for slot management.
type TimeSlotService interface {
	List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, int64, error)
	Get(ctx context.Context, slotID string) (*models.TimeSlot, error)
	Create(ctx context.Context, actor *models.Account, req CreateSlotRequest) (*models.TimeSlot, error)
	CreateBulk(ctx context.Context, actor *models.Account, req models.BulkSlotRequest) (*models.BulkSlotResult, error)
	Update(ctx context.Context, actor *models.Account, slotID string, req UpdateSlotRequest) (*models.TimeSlot, error)
	// Delete refuses to remove a slot holding bookings unless force is set,
	// which only a super-admin may do.
	Delete(ctx context.Context, actor *models.Account, slotID string, force bool) error
}

// DefaultTimeSlotService is the production implementation.
type DefaultTimeSlotService struct {
	Slots      timeslotRepo.TimeSlotRepository
	Facilities facilityRepo.FacilityRepository
	Services   serviceRepo.ServiceRepository
}
