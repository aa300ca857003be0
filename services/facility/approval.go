package facility

import (
	"context"
	"fmt"

	"playfield/models"
)

// setStatus moves a facility through its approval lifecycle and refreshes the
// public listing cache.
func (s *DefaultFacilityService) setStatus(ctx context.Context, facilityID, status, reason string) (*models.Facility, error) {
	facility, err := s.Repo.GetByID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility: %w", err)
	}
	if facility == nil {
		return nil, newError(CodeNotFound, "facility %s not found", facilityID)
	}

	fields := map[string]interface{}{
		"status":          status,
		"rejectionReason": reason,
	}
	if err := s.Repo.UpdateSetDocument(facilityID, fields); err != nil {
		return nil, fmt.Errorf("failed to update facility status: %w", err)
	}
	facility.Status = status
	facility.RejectionReason = reason
	s.invalidateListing(ctx)
	return facility, nil
}

func (s *DefaultFacilityService) Approve(ctx context.Context, facilityID string) (*models.Facility, error) {
	return s.setStatus(ctx, facilityID, models.FacilityStatusApproved, "")
}

func (s *DefaultFacilityService) Reject(ctx context.Context, facilityID, reason string) (*models.Facility, error) {
	if reason == "" {
		return nil, newError(CodeValidation, "a rejection reason is required")
	}
	return s.setStatus(ctx, facilityID, models.FacilityStatusRejected, reason)
}

func (s *DefaultFacilityService) Suspend(ctx context.Context, facilityID string) (*models.Facility, error) {
	return s.setStatus(ctx, facilityID, models.FacilityStatusSuspended, "")
}
