package timeslot

import (
	"time"

	"playfield/models"
	"playfield/utils"
)

// Status projects a slot's read-only display status from stored fields and
// the given "now". It is a pure function and is never persisted: every read
// recomputes it. Priority order: expired, inactive, booked, available.
// Slot dates and clock times are zone-naive strings, so expiry compares them
// lexically against now rendered in the same layouts and in its own location.
func Status(slot *models.TimeSlot, now time.Time) string {
	today := now.Format(utils.DateLayout)
	switch {
	case slot.Date < today:
		return models.SlotStatusExpired
	case slot.Date == today && slot.EndTime != "" && slot.EndTime <= now.Format("15:04"):
		return models.SlotStatusExpired
	}
	if !slot.IsActive {
		return models.SlotStatusInactive
	}
	if slot.IsBooked {
		return models.SlotStatusBooked
	}
	return models.SlotStatusAvailable
}

// attachStatus stamps the derived status on every slot in place.
func attachStatus(slots []models.TimeSlot, now time.Time) {
	for i := range slots {
		slots[i].Status = Status(&slots[i], now)
	}
}
