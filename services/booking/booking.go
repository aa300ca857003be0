package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	timeslotRepo "playfield/database/repository/timeslot"
	"playfield/models"
	"playfield/utils"
)

func (s *DefaultBookingService) Book(ctx context.Context, userID, slotID string, quantity int) (*models.Booking, error) {
	if quantity < 1 {
		return nil, newGuardError(CodeValidation, "quantity must be at least 1, got %d", quantity)
	}

	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newGuardError(CodeNotFound, "timeslot %s not found", slotID)
		}
		return nil, fmt.Errorf("failed to fetch timeslot: %w", err)
	}

	service, err := s.Services.GetByID(slot.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("timeslot %s references missing service %s", slotID, slot.ServiceID)
	}

	if !slot.IsActive {
		return nil, newGuardError(CodeSlotInactive, "timeslot %s is inactive", slotID)
	}
	startAt, err := utils.SlotStartAt(slot.Date, slot.StartTime)
	if err != nil {
		return nil, fmt.Errorf("timeslot %s has malformed schedule: %w", slotID, err)
	}
	if !startAt.After(time.Now()) {
		return nil, newGuardError(CodeSlotExpired, "timeslot %s has already started", slotID)
	}
	if quantity > service.Capacity {
		return nil, newGuardError(CodeCapacityExceeded, "quantity %d exceeds slot capacity %d", quantity, service.Capacity)
	}

	// The store-level conditional update is the authoritative capacity check;
	// everything above only produces friendlier diagnostics.
	if err := s.Slots.IncrementBooked(ctx, slotID, quantity, service.Capacity); err != nil {
		if errors.Is(err, timeslotRepo.ErrConditionFailed) {
			return nil, s.explainGuardFailure(ctx, slotID, quantity, service.Capacity)
		}
		return nil, fmt.Errorf("failed to reserve capacity: %w", err)
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		SlotID:     slot.ID,
		FacilityID: slot.FacilityID,
		ServiceID:  slot.ServiceID,
		UserID:     userID,
		Quantity:   quantity,
		Status:     models.BookingStatusConfirmed,
		Amount:     service.Price * int64(quantity),
		Currency:   service.Currency,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		// Compensate the reserved capacity so the slot is not leaked.
		if rbErr := s.Slots.DecrementBooked(ctx, slotID, quantity, service.Capacity); rbErr != nil {
			utils.GetLogger().Error("failed to roll back reserved capacity",
				zap.String("slotId", slotID), zap.Error(rbErr))
		}
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	s.afterBooking(booking, slot, startAt)
	return booking, nil
}

// explainGuardFailure re-reads the slot after a failed conditional update to
// report the precise cause.
func (s *DefaultBookingService) explainGuardFailure(ctx context.Context, slotID string, quantity, capacity int) error {
	slot, err := s.Slots.GetByID(ctx, slotID)
	if err != nil {
		return newGuardError(CodeNotFound, "timeslot %s not found", slotID)
	}
	if !slot.IsActive {
		return newGuardError(CodeSlotInactive, "timeslot %s is inactive", slotID)
	}
	return newGuardError(CodeCapacityExceeded, "booking %d units would exceed capacity %d (booked %d)",
		quantity, capacity, slot.BookedCount)
}

// afterBooking runs the best-effort side effects: confirmation push and the
// scheduled reminder. Failures are logged, never surfaced to the caller.
func (s *DefaultBookingService) afterBooking(booking *models.Booking, slot *models.TimeSlot, startAt time.Time) {
	logger := utils.GetLogger()

	facilityName := slot.FacilityID
	if facility, err := s.Facilities.GetByID(slot.FacilityID); err == nil && facility != nil {
		facilityName = facility.Name
	}

	if s.Notifier != nil {
		body := fmt.Sprintf("Your booking at %s on %s %s is confirmed.", facilityName, slot.Date, slot.StartTime)
		if err := s.Notifier.SendPush(context.Background(), booking.UserID, "Booking confirmed", body, map[string]string{
			"bookingId": booking.ID,
		}); err != nil {
			logger.Warn("failed to send booking confirmation push", zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	if s.Reminders != nil {
		fireAt := startAt.Add(-s.ReminderLead)
		if fireAt.After(time.Now()) {
			payload := models.ReminderPayload{
				BookingID: booking.ID,
				UserID:    booking.UserID,
				SlotDate:  slot.Date,
				SlotStart: slot.StartTime,
				Facility:  facilityName,
				Service:   booking.ServiceID,
			}
			if err := s.Reminders.ScheduleBookingReminder(payload, fireAt); err != nil {
				logger.Warn("failed to schedule booking reminder", zap.String("bookingId", booking.ID), zap.Error(err))
			}
		}
	}
}

func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, newGuardError(CodeNotFound, "booking %s not found", bookingID)
	}
	if booking.UserID != userID {
		return nil, newGuardError(CodeForbidden, "booking %s does not belong to the caller", bookingID)
	}
	return s.cancel(ctx, booking)
}

func (s *DefaultBookingService) CancelBySlot(ctx context.Context, userID, slotID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetConfirmedByUserAndSlot(ctx, userID, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, newGuardError(CodeNotBooked, "no confirmed booking on timeslot %s", slotID)
	}
	return s.cancel(ctx, booking)
}

func (s *DefaultBookingService) cancel(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.Status != models.BookingStatusConfirmed {
		return nil, newGuardError(CodeNotBooked, "booking %s is already cancelled", booking.ID)
	}

	service, err := s.Services.GetByID(booking.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("booking %s references missing service %s", booking.ID, booking.ServiceID)
	}

	if err := s.Slots.DecrementBooked(ctx, booking.SlotID, booking.Quantity, service.Capacity); err != nil {
		if errors.Is(err, timeslotRepo.ErrConditionFailed) {
			return nil, newGuardError(CodeNotBooked, "timeslot %s holds no booked units to release", booking.SlotID)
		}
		return nil, fmt.Errorf("failed to release capacity: %w", err)
	}

	if err := s.Bookings.UpdateSetDocument(ctx, booking.ID, map[string]interface{}{"status": models.BookingStatusCancelled}); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
