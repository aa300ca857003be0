package models

import "time"

// Booking lifecycle.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation of capacity within a time-slot. An accepted
// booking is final once acknowledged; cancellation releases its quantity
// back to the slot.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	SlotID          string    `bson:"slotId" json:"slotId"`
	FacilityID      string    `bson:"facilityId" json:"facilityId"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	UserID          string    `bson:"userId" json:"userId"`
	Quantity        int       `bson:"quantity" json:"quantity"`
	Status          string    `bson:"status" json:"status"`
	Amount          int64     `bson:"amount" json:"amount"` // minor currency units
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
