package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"playfield/models"
	"playfield/utils"
)

// CreatePaymentIntent opens a Stripe payment intent for a confirmed booking
// and stores its ID on the booking. It returns the client secret the caller
// uses to complete the payment.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return "", newGuardError(CodeNotFound, "booking %s not found", bookingID)
	}
	if booking.UserID != userID {
		return "", newGuardError(CodeForbidden, "booking %s does not belong to the caller", bookingID)
	}
	if booking.Status != models.BookingStatusConfirmed {
		return "", newGuardError(CodeConflict, "booking %s is cancelled", bookingID)
	}
	if booking.Amount <= 0 {
		return "", newGuardError(CodeValidation, "booking %s has nothing to pay", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(booking.Amount),
		Currency: stripe.String(booking.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", booking.ID)
	params.AddMetadata("slotId", booking.SlotID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.Bookings.UpdateSetDocument(ctx, booking.ID, map[string]interface{}{"paymentIntentId": intent.ID}); err != nil {
		utils.GetLogger().Warn("failed to store payment intent id",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	return intent.ClientSecret, nil
}
