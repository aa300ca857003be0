package models

import "time"

// Derived, read-only slot statuses, never persisted.
const (
	SlotStatusExpired   = "expired"
	SlotStatusInactive  = "inactive"
	SlotStatusBooked    = "booked"
	SlotStatusAvailable = "available"
)

// TimeSlot represents one bookable interval at a facility for a specific
// service. Date is a time-zone-naive calendar date; start and end are
// 24-hour "HH:MM" wall-clock strings on that date.
//
// Invariant: IsBooked == (BookedCount >= the service's capacity). Both the
// increment and decrement paths recompute IsBooked inside the same atomic
// store update that moves BookedCount.
type TimeSlot struct {
	ID          string    `bson:"id" json:"id"`
	FacilityID  string    `bson:"facilityId" json:"facilityId"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	StartTime   string    `bson:"startTime" json:"startTime"`
	EndTime     string    `bson:"endTime" json:"endTime"`
	IsBooked    bool      `bson:"isBooked" json:"isBooked"`
	BookedCount int       `bson:"bookedCount" json:"bookedCount"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`

	// Status is computed from stored fields and "now" on every read.
	Status string `bson:"-" json:"status,omitempty"`
}

// TimeRange is one {startTime,endTime} pair in a bulk-creation request.
type TimeRange struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime"`
}

// BulkSlotRequest creates many slots in one call: the explicit time ranges
// on Date, optionally repeated on the given weekdays through EndDate.
type BulkSlotRequest struct {
	FacilityID string      `json:"facilityId" binding:"required"`
	ServiceID  string      `json:"serviceId" binding:"required"`
	Date       string      `json:"date" binding:"required"`
	TimeSlots  []TimeRange `json:"timeSlots" binding:"required"`
	Recurring  []string    `json:"recurring,omitempty"` // lowercase weekday names
	EndDate    string      `json:"endDate,omitempty"`
}

// BulkSlotResult reports per-item outcomes; one bad date never aborts the batch.
type BulkSlotResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors,omitempty"`
}

// SlotFilter narrows slot listings.
type SlotFilter struct {
	FacilityID string
	ServiceID  string
	Date       string
	DateFrom   string
	DateTo     string
	IsActive   *bool
	IsBooked   *bool
	Page       int64
	Limit      int64
	SortDesc   bool
}
