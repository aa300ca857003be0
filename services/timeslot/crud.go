package timeslot

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"playfield/models"
	"playfield/utils"
)

func (s *DefaultTimeSlotService) List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, int64, error) {
	slots, total, err := s.Slots.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timeslots: %w", err)
	}
	attachStatus(slots, time.Now())
	return slots, total, nil
}

func (s *DefaultTimeSlotService) Get(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newNotFoundError("timeslot %s not found", slotID)
		}
		return nil, fmt.Errorf("failed to fetch timeslot: %w", err)
	}
	slot.Status = Status(slot, time.Now())
	return slot, nil
}

// loadOwned resolves the facility and service for a slot mutation and
// enforces that the actor owns the facility. Super-admins bypass ownership.
func (s *DefaultTimeSlotService) loadOwned(actor *models.Account, facilityID, serviceID string) (*models.Facility, *models.Service, error) {
	facility, err := s.Facilities.GetByID(facilityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch facility: %w", err)
	}
	if facility == nil {
		return nil, nil, newNotFoundError("facility %s not found", facilityID)
	}
	if actor.Role != models.RoleSuperAdmin && facility.OwnerID != actor.ID {
		return nil, nil, newForbiddenError("account %s does not own facility %s", actor.ID, facilityID)
	}

	service, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, nil, newNotFoundError("service %s not found", serviceID)
	}
	if service.FacilityID != facilityID {
		return nil, nil, newValidationError("service %s does not belong to facility %s", serviceID, facilityID)
	}
	return facility, service, nil
}

// validateSlot checks shape, opening hours and collisions for one candidate
// (date, start, end) triple. excludeID skips the slot being edited.
func (s *DefaultTimeSlotService) validateSlot(ctx context.Context, facility *models.Facility, service *models.Service, date, startTime, endTime, excludeID string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return newValidationError("%v", err)
	}
	if err := ValidateShape(startTime, endTime, service.DurationMinutes); err != nil {
		return err
	}

	startMin, _ := utils.ParseClock(startTime)
	endMin, _ := utils.ParseClock(endTime)
	if err := withinOpeningHours(facility, date, startMin, endMin); err != nil {
		return err
	}

	existing, err := s.Slots.GetByFacilityAndDate(ctx, facility.ID, date)
	if err != nil {
		return fmt.Errorf("failed to check for colliding slots: %w", err)
	}
	for i := range existing {
		other := &existing[i]
		if other.ID == excludeID || other.ServiceID != service.ID {
			continue
		}
		oStart, err := utils.ParseClock(other.StartTime)
		if err != nil {
			continue
		}
		oEnd, err := utils.ParseClock(other.EndTime)
		if err != nil {
			continue
		}
		if overlaps(startMin, endMin, oStart, oEnd) {
			return newConflictError("slot %s-%s on %s collides with existing slot %s-%s",
				startTime, endTime, date, other.StartTime, other.EndTime)
		}
	}
	return nil
}

func (s *DefaultTimeSlotService) Create(ctx context.Context, actor *models.Account, req CreateSlotRequest) (*models.TimeSlot, error) {
	facility, service, err := s.loadOwned(actor, req.FacilityID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	endTime := req.EndTime
	if endTime == "" {
		endTime, err = EndTime(req.StartTime, service.DurationMinutes)
		if err != nil {
			return nil, err
		}
	}
	if err := s.validateSlot(ctx, facility, service, req.Date, req.StartTime, endTime, ""); err != nil {
		return nil, err
	}

	slot := &models.TimeSlot{
		FacilityID: req.FacilityID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		IsActive:   true,
		CreatedBy:  actor.ID,
	}
	if err := s.Slots.Create(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, newConflictError("slot already exists at %s %s", req.Date, req.StartTime)
		}
		return nil, fmt.Errorf("failed to create timeslot: %w", err)
	}
	slot.Status = Status(slot, time.Now())
	return slot, nil
}

// CreateBulk expands the request into concrete slots and inserts them one by
// one. A colliding or malformed item is reported in the result, not fatal.
func (s *DefaultTimeSlotService) CreateBulk(ctx context.Context, actor *models.Account, req models.BulkSlotRequest) (*models.BulkSlotResult, error) {
	facility, service, err := s.loadOwned(actor, req.FacilityID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	triples, itemErrs, err := expandBulk(req, service.DurationMinutes)
	if err != nil {
		return nil, err
	}

	result := &models.BulkSlotResult{Errors: itemErrs}
	for _, t := range triples {
		if err := s.validateSlot(ctx, facility, service, t.Date, t.StartTime, t.EndTime, ""); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %s: %v", t.Date, t.StartTime, err))
			continue
		}
		slot := &models.TimeSlot{
			FacilityID: req.FacilityID,
			ServiceID:  req.ServiceID,
			Date:       t.Date,
			StartTime:  t.StartTime,
			EndTime:    t.EndTime,
			IsActive:   true,
			CreatedBy:  actor.ID,
		}
		if err := s.Slots.Create(ctx, slot); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %s: %v", t.Date, t.StartTime, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

func (s *DefaultTimeSlotService) Update(ctx context.Context, actor *models.Account, slotID string, req UpdateSlotRequest) (*models.TimeSlot, error) {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newNotFoundError("timeslot %s not found", slotID)
		}
		return nil, fmt.Errorf("failed to fetch timeslot: %w", err)
	}

	facility, service, err := s.loadOwned(actor, slot.FacilityID, slot.ServiceID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	timeChanged := req.Date != nil || req.StartTime != nil || req.EndTime != nil
	if timeChanged {
		if slot.BookedCount > 0 {
			return nil, newConflictError("cannot reschedule timeslot %s: bookings exist", slotID)
		}
		date, startTime, endTime := slot.Date, slot.StartTime, slot.EndTime
		if req.Date != nil {
			date = *req.Date
		}
		if req.StartTime != nil {
			startTime = *req.StartTime
			if req.EndTime == nil {
				// Keep the shape anchored to the service duration.
				endTime, err = EndTime(startTime, service.DurationMinutes)
				if err != nil {
					return nil, err
				}
			}
		}
		if req.EndTime != nil {
			endTime = *req.EndTime
		}
		if err := s.validateSlot(ctx, facility, service, date, startTime, endTime, slot.ID); err != nil {
			return nil, err
		}
		fields["date"] = date
		fields["startTime"] = startTime
		fields["endTime"] = endTime
		slot.Date, slot.StartTime, slot.EndTime = date, startTime, endTime
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
		slot.IsActive = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, newValidationError("no editable fields in request")
	}

	if err := s.Slots.UpdateFields(ctx, slotID, fields); err != nil {
		return nil, fmt.Errorf("failed to update timeslot: %w", err)
	}
	slot.Status = Status(slot, time.Now())
	return slot, nil
}

func (s *DefaultTimeSlotService) Delete(ctx context.Context, actor *models.Account, slotID string, force bool) error {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return newNotFoundError("timeslot %s not found", slotID)
		}
		return fmt.Errorf("failed to fetch timeslot: %w", err)
	}

	if _, _, err := s.loadOwned(actor, slot.FacilityID, slot.ServiceID); err != nil {
		return err
	}

	if slot.BookedCount > 0 {
		if !force {
			return &SlotError{Code: CodeSlotBooked, Message: fmt.Sprintf("cannot delete timeslot %s: bookings exist", slotID)}
		}
		if actor.Role != models.RoleSuperAdmin {
			return newForbiddenError("force delete requires super-admin privilege")
		}
	}

	if err := s.Slots.DeleteByID(ctx, slotID); err != nil {
		return fmt.Errorf("failed to delete timeslot: %w", err)
	}
	return nil
}
