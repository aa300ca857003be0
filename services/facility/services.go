package facility

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"playfield/models"
)

func (s *DefaultFacilityService) ListServices(ctx context.Context, facilityID string) ([]models.Service, error) {
	services, err := s.Services.GetByFacility(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *DefaultFacilityService) CreateService(ctx context.Context, actor *models.Account, facilityID string, req CreateServiceRequest) (*models.Service, error) {
	if _, err := s.loadOwned(actor, facilityID); err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 {
		return nil, newError(CodeValidation, "durationMinutes must be positive, got %d", req.DurationMinutes)
	}
	if req.Capacity <= 0 {
		return nil, newError(CodeValidation, "capacity must be positive, got %d", req.Capacity)
	}
	if req.Price < 0 {
		return nil, newError(CodeValidation, "price must not be negative, got %d", req.Price)
	}

	service := &models.Service{
		ID:              uuid.New().String(),
		FacilityID:      facilityID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Currency:        req.Currency,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		IsActive:        true,
	}
	if err := s.Services.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// loadOwnedService resolves a service through its facility's ownership.
func (s *DefaultFacilityService) loadOwnedService(actor *models.Account, serviceID string) (*models.Service, error) {
	service, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, newError(CodeNotFound, "service %s not found", serviceID)
	}
	if _, err := s.loadOwned(actor, service.FacilityID); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *DefaultFacilityService) UpdateService(ctx context.Context, actor *models.Account, serviceID string, req UpdateServiceRequest) (*models.Service, error) {
	service, err := s.loadOwnedService(actor, serviceID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
		service.Name = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
		service.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, newError(CodeValidation, "price must not be negative, got %d", *req.Price)
		}
		fields["price"] = *req.Price
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
		service.IsActive = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, newError(CodeValidation, "no editable fields in request")
	}

	if err := s.Services.UpdateSetDocument(serviceID, fields); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// DeleteService removes a service and its slots. Blocked while any of its
// slots still holds bookings.
func (s *DefaultFacilityService) DeleteService(ctx context.Context, actor *models.Account, serviceID string) error {
	if _, err := s.loadOwnedService(actor, serviceID); err != nil {
		return err
	}

	booked, err := s.Slots.CountBooked(ctx, "serviceId", serviceID)
	if err != nil {
		return fmt.Errorf("failed to check for booked slots: %w", err)
	}
	if booked > 0 {
		return newError(CodeConflict, "cannot delete service %s: %d slots hold bookings", serviceID, booked)
	}

	if _, err := s.Slots.DeleteByService(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service slots: %w", err)
	}
	if err := s.Services.Delete(serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
