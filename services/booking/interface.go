package booking

import (
	"context"
	"time"

	bookingRepo "playfield/database/repository/booking"
	facilityRepo "playfield/database/repository/facility"
	serviceRepo "playfield/database/repository/service"
	timeslotRepo "playfield/database/repository/timeslot"
	"playfield/models"
	"playfield/services/notification"
)

// ReminderScheduler enqueues a booking reminder to fire at the given instant.
// The asynq-backed implementation lives in the cron package.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload, at time.Time) error
}

// BookingService decides whether a booking or cancellation against a slot is
// legal and records the outcome.
type BookingService interface {
	// Book reserves quantity units of the slot for the user. The capacity
	// check-and-increment is atomic at the store; two concurrent calls can
	// never both succeed past capacity.
	Book(ctx context.Context, userID, slotID string, quantity int) (*models.Booking, error)
	// Cancel releases a confirmed booking back to its slot.
	Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	// CancelBySlot cancels the user's confirmed booking on the given slot.
	CancelBySlot(ctx context.Context, userID, slotID string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// CreatePaymentIntent opens a Stripe payment intent for a confirmed
	// booking and returns its client secret.
	CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Slots      timeslotRepo.TimeSlotRepository
	Bookings   bookingRepo.BookingRepository
	Services   serviceRepo.ServiceRepository
	Facilities facilityRepo.FacilityRepository

	// Both are best-effort collaborators; either may be nil in tests.
	Notifier  notification.NotificationService
	Reminders ReminderScheduler

	// ReminderLead is how long before the slot start the reminder fires.
	ReminderLead time.Duration
}
