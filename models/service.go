package models

import "time"

// Service is a bookable offering with a fixed price, duration and capacity,
// owned by exactly one facility. A time-slot's shape (duration) is derived
// from its service, never set independently.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	FacilityID      string    `bson:"facilityId" json:"facilityId"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	Price           int64     `bson:"price" json:"price"` // minor currency units
	Currency        string    `bson:"currency" json:"currency"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Capacity        int       `bson:"capacity" json:"capacity"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
