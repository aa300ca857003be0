package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"playfield/models"
	"playfield/services/storage"
	"playfield/utils"
)

// ListPublic returns approved facilities. The listing is the hottest public
// read, so it is cached in Redis for a few minutes.
func (s *DefaultFacilityService) ListPublic(ctx context.Context) ([]models.Facility, error) {
	cache := utils.GetCacheClient()

	if raw, err := cache.Get(ctx, utils.FacilityListCacheKey).Result(); err == nil {
		var facilities []models.Facility
		if err := json.Unmarshal([]byte(raw), &facilities); err == nil {
			return facilities, nil
		}
	}

	facilities, err := s.Repo.GetByStatus(models.FacilityStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved facilities: %w", err)
	}

	if data, err := json.Marshal(facilities); err == nil {
		if err := cache.Set(ctx, utils.FacilityListCacheKey, data, utils.FacilityListCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache facility listing", zap.Error(err))
		}
	}
	return facilities, nil
}

func (s *DefaultFacilityService) invalidateListing(ctx context.Context) {
	if err := utils.GetCacheClient().Del(ctx, utils.FacilityListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate facility listing cache", zap.Error(err))
	}
}

// Get returns one facility. Unapproved facilities are visible only to their
// owner and super-admins.
func (s *DefaultFacilityService) Get(ctx context.Context, actor *models.Account, facilityID string) (*models.Facility, error) {
	facility, err := s.Repo.GetByID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility: %w", err)
	}
	if facility == nil {
		return nil, newError(CodeNotFound, "facility %s not found", facilityID)
	}
	if facility.Status != models.FacilityStatusApproved {
		if actor == nil || (actor.Role != models.RoleSuperAdmin && facility.OwnerID != actor.ID) {
			return nil, newError(CodeNotFound, "facility %s not found", facilityID)
		}
	}
	return facility, nil
}

func (s *DefaultFacilityService) ListByOwner(ctx context.Context, ownerID string) ([]models.Facility, error) {
	facilities, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	return facilities, nil
}

func (s *DefaultFacilityService) ListByStatus(ctx context.Context, status string) ([]models.Facility, error) {
	facilities, err := s.Repo.GetByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	return facilities, nil
}

func validateOpeningHours(hours map[string]models.OpeningHours) error {
	for day, h := range hours {
		if h.Closed {
			continue
		}
		open, err := utils.ParseClock(h.Open)
		if err != nil {
			return newError(CodeValidation, "%s: %v", day, err)
		}
		closeAt, err := utils.ParseClock(h.Close)
		if err != nil {
			return newError(CodeValidation, "%s: %v", day, err)
		}
		if closeAt <= open {
			return newError(CodeValidation, "%s: close %s must be after open %s", day, h.Close, h.Open)
		}
	}
	return nil
}

// normalizeOpeningHours lower-cases weekday keys so lookups are uniform.
func normalizeOpeningHours(hours map[string]models.OpeningHours) map[string]models.OpeningHours {
	if hours == nil {
		return nil
	}
	out := make(map[string]models.OpeningHours, len(hours))
	for day, h := range hours {
		out[strings.ToLower(day)] = h
	}
	return out
}

func (s *DefaultFacilityService) Create(ctx context.Context, actor *models.Account, req CreateFacilityRequest) (*models.Facility, error) {
	if err := validateOpeningHours(req.OpeningHours); err != nil {
		return nil, err
	}

	facility := &models.Facility{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Categories:   req.Categories,
		OpeningHours: normalizeOpeningHours(req.OpeningHours),
		Status:       models.FacilityStatusPending,
		OwnerID:      actor.ID,
	}
	if err := s.Repo.Create(facility); err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}
	return facility, nil
}

// loadOwned fetches a facility and enforces ownership. Super-admins bypass.
func (s *DefaultFacilityService) loadOwned(actor *models.Account, facilityID string) (*models.Facility, error) {
	facility, err := s.Repo.GetByID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility: %w", err)
	}
	if facility == nil {
		return nil, newError(CodeNotFound, "facility %s not found", facilityID)
	}
	if actor.Role != models.RoleSuperAdmin && facility.OwnerID != actor.ID {
		return nil, newError(CodeForbidden, "account %s does not own facility %s", actor.ID, facilityID)
	}
	return facility, nil
}

func (s *DefaultFacilityService) Update(ctx context.Context, actor *models.Account, facilityID string, req UpdateFacilityRequest) (*models.Facility, error) {
	facility, err := s.loadOwned(actor, facilityID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
		facility.Name = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
		facility.Description = *req.Description
	}
	if req.Address != nil {
		fields["address"] = *req.Address
		facility.Address = *req.Address
	}
	if req.Categories != nil {
		fields["categories"] = *req.Categories
		facility.Categories = *req.Categories
	}
	if req.OpeningHours != nil {
		if err := validateOpeningHours(*req.OpeningHours); err != nil {
			return nil, err
		}
		normalized := normalizeOpeningHours(*req.OpeningHours)
		fields["openingHours"] = normalized
		facility.OpeningHours = normalized
	}
	if len(fields) == 0 {
		return nil, newError(CodeValidation, "no editable fields in request")
	}

	if err := s.Repo.UpdateSetDocument(facilityID, fields); err != nil {
		return nil, fmt.Errorf("failed to update facility: %w", err)
	}
	s.invalidateListing(ctx)
	return facility, nil
}

// Delete removes a facility with its services, slots and uploaded images. It
// is blocked while any slot still holds bookings rather than orphaning them.
func (s *DefaultFacilityService) Delete(ctx context.Context, actor *models.Account, facilityID string) error {
	fac, err := s.loadOwned(actor, facilityID)
	if err != nil {
		return err
	}

	booked, err := s.Slots.CountBooked(ctx, "facilityId", facilityID)
	if err != nil {
		return fmt.Errorf("failed to check for booked slots: %w", err)
	}
	if booked > 0 {
		return newError(CodeConflict, "cannot delete facility %s: %d slots hold bookings", facilityID, booked)
	}

	if _, err := s.Slots.DeleteByFacility(ctx, facilityID); err != nil {
		return fmt.Errorf("failed to delete facility slots: %w", err)
	}
	if _, err := s.Services.DeleteByFacility(facilityID); err != nil {
		return fmt.Errorf("failed to delete facility services: %w", err)
	}
	if err := s.Repo.Delete(facilityID); err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	s.removeImages(ctx, fac)
	s.invalidateListing(ctx)
	return nil
}

// removeImages destroys a deleted facility's uploaded images. Failures are
// logged, not returned: the facility record is already gone and a stray asset
// is preferable to a half-deleted facility.
func (s *DefaultFacilityService) removeImages(ctx context.Context, fac *models.Facility) {
	if s.Storage == nil {
		return
	}
	for _, img := range fac.Images {
		publicID := storage.PublicIDFromURL(img)
		if publicID == "" {
			continue
		}
		if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
			utils.GetLogger().Warn("failed to delete facility image",
				zap.String("facilityId", fac.ID), zap.Error(err))
		}
	}
}

func (s *DefaultFacilityService) UploadImage(ctx context.Context, actor *models.Account, facilityID string, file io.Reader) (string, error) {
	if _, err := s.loadOwned(actor, facilityID); err != nil {
		return "", err
	}
	if s.Storage == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	url, err := s.Storage.UploadImage(ctx, file, "facilities/"+facilityID)
	if err != nil {
		return "", fmt.Errorf("failed to upload facility image: %w", err)
	}
	if err := s.Repo.PushImage(facilityID, url); err != nil {
		return "", fmt.Errorf("failed to record facility image: %w", err)
	}
	s.invalidateListing(ctx)
	return url, nil
}
