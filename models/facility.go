package models

import "time"

// Facility approval lifecycle.
const (
	FacilityStatusPending   = "pending"
	FacilityStatusApproved  = "approved"
	FacilityStatusRejected  = "rejected"
	FacilityStatusSuspended = "suspended"
)

// OpeningHours bounds valid slot times for one weekday.
// Times are 24-hour "HH:MM" wall-clock strings.
type OpeningHours struct {
	Open   string `bson:"open" json:"open"`
	Close  string `bson:"close" json:"close"`
	Closed bool   `bson:"closed,omitempty" json:"closed,omitempty"`
}

// Facility is a physical venue offering one or more bookable services.
// Only approved facilities are visible to the public.
type Facility struct {
	ID              string                  `bson:"id" json:"id"`
	Name            string                  `bson:"name" json:"name"`
	Description     string                  `bson:"description,omitempty" json:"description,omitempty"`
	Address         string                  `bson:"address" json:"address"`
	Categories      []string                `bson:"categories,omitempty" json:"categories,omitempty"` // e.g. ["tennis", "padel"]
	Images          []string                `bson:"images,omitempty" json:"images,omitempty"`
	OpeningHours    map[string]OpeningHours `bson:"openingHours,omitempty" json:"openingHours,omitempty"` // keyed by lowercase weekday name
	Status          string                  `bson:"status" json:"status"`
	RejectionReason string                  `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	OwnerID         string                  `bson:"ownerId" json:"ownerId"`
	CreatedAt       time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time               `bson:"updatedAt" json:"updatedAt"`
}
