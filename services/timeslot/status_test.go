package timeslot

import (
	"testing"
	"time"

	"playfield/models"
)

func TestStatusPriorityOrder(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		slot models.TimeSlot
		want string
	}{
		{
			name: "available",
			slot: models.TimeSlot{Date: "2026-09-11", IsActive: true},
			want: models.SlotStatusAvailable,
		},
		{
			name: "booked",
			slot: models.TimeSlot{Date: "2026-09-11", IsActive: true, IsBooked: true},
			want: models.SlotStatusBooked,
		},
		{
			name: "inactive",
			slot: models.TimeSlot{Date: "2026-09-11", IsActive: false},
			want: models.SlotStatusInactive,
		},
		{
			name: "inactive beats booked",
			slot: models.TimeSlot{Date: "2026-09-11", IsActive: false, IsBooked: true},
			want: models.SlotStatusInactive,
		},
		{
			name: "yesterday is expired",
			slot: models.TimeSlot{Date: "2026-09-09", IsActive: true},
			want: models.SlotStatusExpired,
		},
		{
			name: "expired beats inactive and booked",
			slot: models.TimeSlot{Date: "2026-09-09", IsActive: false, IsBooked: true},
			want: models.SlotStatusExpired,
		},
		{
			name: "today is not expired",
			slot: models.TimeSlot{Date: "2026-09-10", IsActive: true},
			want: models.SlotStatusAvailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(&tc.slot, now); got != tc.want {
				t.Fatalf("Status(%+v) = %s, want %s", tc.slot, got, tc.want)
			}
		})
	}
}

func TestStatusExpiryIsZoneNaive(t *testing.T) {
	// Slot dates carry no zone, so expiry must follow the caller's wall
	// clock. A slot dated today must not project expired just because
	// midnight UTC of that date has already passed.
	nairobi := time.FixedZone("EAT", 3*3600)
	lima := time.FixedZone("UTC-5", -5*3600)

	cases := []struct {
		name string
		slot models.TimeSlot
		now  time.Time
		want string
	}{
		{
			name: "today west of UTC is not expired",
			slot: models.TimeSlot{Date: "2026-09-10", IsActive: true},
			now:  time.Date(2026, 9, 10, 12, 0, 0, 0, lima),
			want: models.SlotStatusAvailable,
		},
		{
			name: "today east of UTC is not expired",
			slot: models.TimeSlot{Date: "2026-09-10", IsActive: true},
			now:  time.Date(2026, 9, 10, 1, 0, 0, 0, nairobi),
			want: models.SlotStatusAvailable,
		},
		{
			name: "yesterday west of UTC is expired",
			slot: models.TimeSlot{Date: "2026-09-09", IsActive: true},
			now:  time.Date(2026, 9, 10, 0, 30, 0, 0, lima),
			want: models.SlotStatusExpired,
		},
		{
			name: "slot ended earlier today is expired",
			slot: models.TimeSlot{Date: "2026-09-10", StartTime: "09:00", EndTime: "10:00", IsActive: true},
			now:  time.Date(2026, 9, 10, 11, 0, 0, 0, lima),
			want: models.SlotStatusExpired,
		},
		{
			name: "slot ending later today is still available",
			slot: models.TimeSlot{Date: "2026-09-10", StartTime: "18:00", EndTime: "19:00", IsActive: true},
			now:  time.Date(2026, 9, 10, 12, 0, 0, 0, lima),
			want: models.SlotStatusAvailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(&tc.slot, tc.now); got != tc.want {
				t.Fatalf("Status(%+v, %s) = %s, want %s", tc.slot, tc.now, got, tc.want)
			}
		})
	}
}

func TestStatusIsPure(t *testing.T) {
	slot := models.TimeSlot{Date: "2026-09-11", IsActive: true, IsBooked: false}
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	before := slot
	for i := 0; i < 3; i++ {
		if got := Status(&slot, now); got != models.SlotStatusAvailable {
			t.Fatalf("call %d: got %s", i, got)
		}
	}
	if slot != before {
		t.Fatalf("Status mutated the slot: %+v", slot)
	}

	// The same stored slot projects differently as time moves on.
	later := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	if got := Status(&slot, later); got != models.SlotStatusExpired {
		t.Fatalf("after the date passed: got %s, want expired", got)
	}
}

func TestAttachStatus(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		{Date: "2026-09-09", IsActive: true},
		{Date: "2026-09-11", IsActive: true, IsBooked: true},
		{Date: "2026-09-11", IsActive: true},
	}
	attachStatus(slots, now)

	want := []string{models.SlotStatusExpired, models.SlotStatusBooked, models.SlotStatusAvailable}
	for i, w := range want {
		if slots[i].Status != w {
			t.Fatalf("slot %d: status = %s, want %s", i, slots[i].Status, w)
		}
	}
}
