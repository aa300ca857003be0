package timeslot

import (
	"errors"
	"strings"
	"testing"

	"playfield/models"
)

func TestEndTimeDerivation(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     string
	}{
		{"09:00", 60, "10:00"},
		{"09:00", 45, "09:45"},
		{"09:30", 90, "11:00"},
		{"00:00", 1, "00:01"},
		{"22:59", 60, "23:59"},
	}
	for _, tc := range cases {
		got, err := EndTime(tc.start, tc.duration)
		if err != nil {
			t.Fatalf("EndTime(%s, %d): unexpected error: %v", tc.start, tc.duration, err)
		}
		if got != tc.want {
			t.Fatalf("EndTime(%s, %d) = %s, want %s", tc.start, tc.duration, got, tc.want)
		}
	}
}

func TestEndTimeRejectsMidnightCrossing(t *testing.T) {
	// 23:30 + 60min would land at 00:30 next day.
	if _, err := EndTime("23:30", 60); err == nil {
		t.Fatal("expected error for slot crossing midnight")
	}
	// Ending exactly at 24:00 is rejected too.
	if _, err := EndTime("23:00", 60); err == nil {
		t.Fatal("expected error for slot ending at midnight")
	}
	if _, err := EndTime("23:00", 59); err != nil {
		t.Fatalf("slot ending 23:59 should be allowed, got %v", err)
	}
}

func TestEndTimeRejectsBadInput(t *testing.T) {
	if _, err := EndTime("09:00", 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := EndTime("09:00", -30); err == nil {
		t.Fatal("expected error for negative duration")
	}
	if _, err := EndTime("25:00", 30); err == nil {
		t.Fatal("expected error for invalid clock value")
	}
	if _, err := EndTime("9am", 30); err == nil {
		t.Fatal("expected error for non HH:MM value")
	}
}

func TestValidateShapeExactDuration(t *testing.T) {
	if err := ValidateShape("09:00", "10:00", 60); err != nil {
		t.Fatalf("matching shape rejected: %v", err)
	}

	// 45 actual minutes against a 60-minute service: no tolerance.
	err := ValidateShape("09:00", "09:45", 60)
	if err == nil {
		t.Fatal("expected duration mismatch error")
	}
	var se *SlotError
	if !errors.As(err, &se) || se.Code != CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := ValidateShape("10:00", "09:00", 60); err == nil {
		t.Fatal("expected error when end precedes start")
	}
	if err := ValidateShape("09:00", "09:00", 0); err == nil {
		t.Fatal("expected error for zero-length slot")
	}
}

func TestExpandBulkSingleDate(t *testing.T) {
	req := models.BulkSlotRequest{
		Date: "2026-09-07",
		TimeSlots: []models.TimeRange{
			{StartTime: "10:00"},
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}
	out, itemErrs, err := expandBulk(req, 60)
	if err != nil {
		t.Fatalf("expandBulk failed: %v", err)
	}
	if len(itemErrs) != 0 {
		t.Fatalf("unexpected item errors: %v", itemErrs)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(out))
	}
	// Sorted by date then start time.
	if out[0].StartTime != "09:00" || out[0].EndTime != "10:00" {
		t.Fatalf("unexpected first slot: %+v", out[0])
	}
	if out[1].StartTime != "10:00" || out[1].EndTime != "11:00" {
		t.Fatalf("derived end time wrong: %+v", out[1])
	}
}

func TestExpandBulkRecurring(t *testing.T) {
	// 2026-09-07 is a Monday; repeat on Mondays and Wednesdays for two weeks.
	req := models.BulkSlotRequest{
		Date:      "2026-09-07",
		EndDate:   "2026-09-20",
		Recurring: []string{"monday", "Wednesday"},
		TimeSlots: []models.TimeRange{{StartTime: "08:00"}},
	}
	out, itemErrs, err := expandBulk(req, 30)
	if err != nil {
		t.Fatalf("expandBulk failed: %v", err)
	}
	if len(itemErrs) != 0 {
		t.Fatalf("unexpected item errors: %v", itemErrs)
	}

	// Base date plus 2026-09-09, 09-14, 09-16 (09-21 is past the end date).
	wantDates := []string{"2026-09-07", "2026-09-09", "2026-09-14", "2026-09-16"}
	if len(out) != len(wantDates) {
		t.Fatalf("expected %d slots, got %d: %+v", len(wantDates), len(out), out)
	}
	for i, want := range wantDates {
		if out[i].Date != want {
			t.Fatalf("slot %d: date = %s, want %s", i, out[i].Date, want)
		}
		if out[i].EndTime != "08:30" {
			t.Fatalf("slot %d: end = %s, want 08:30", i, out[i].EndTime)
		}
	}
}

func TestExpandBulkRecurringRequiresEndDate(t *testing.T) {
	req := models.BulkSlotRequest{
		Date:      "2026-09-07",
		Recurring: []string{"monday"},
		TimeSlots: []models.TimeRange{{StartTime: "08:00"}},
	}
	if _, _, err := expandBulk(req, 30); err == nil {
		t.Fatal("expected error for recurring request without endDate")
	}

	req.EndDate = "2026-09-01"
	if _, _, err := expandBulk(req, 30); err == nil {
		t.Fatal("expected error for endDate before date")
	}

	req.EndDate = "2026-09-20"
	req.Recurring = []string{"moonday"}
	if _, _, err := expandBulk(req, 30); err == nil {
		t.Fatal("expected error for unknown weekday name")
	}
}

func TestExpandBulkPartialFailures(t *testing.T) {
	req := models.BulkSlotRequest{
		Date: "2026-09-07",
		TimeSlots: []models.TimeRange{
			{StartTime: "09:00"},
			{StartTime: "23:45"},                     // would cross midnight
			{StartTime: "10:00", EndTime: "10:20"},   // wrong duration
			{StartTime: "09:00"},                     // duplicate
		},
	}
	out, itemErrs, err := expandBulk(req, 60)
	if err != nil {
		t.Fatalf("expandBulk failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 valid slot, got %d", len(out))
	}
	if len(itemErrs) != 3 {
		t.Fatalf("expected 3 item errors, got %d: %v", len(itemErrs), itemErrs)
	}
	for _, msg := range itemErrs {
		if !strings.HasPrefix(msg, "2026-09-07 ") {
			t.Fatalf("item error missing date context: %q", msg)
		}
	}
}

func TestWithinOpeningHours(t *testing.T) {
	fac := &models.Facility{
		ID: "fac-1",
		OpeningHours: map[string]models.OpeningHours{
			"monday": {Open: "08:00", Close: "20:00"},
			"sunday": {Closed: true},
		},
	}

	// 2026-09-07 is a Monday.
	if err := withinOpeningHours(fac, "2026-09-07", 8*60, 9*60); err != nil {
		t.Fatalf("in-hours slot rejected: %v", err)
	}
	if err := withinOpeningHours(fac, "2026-09-07", 7*60, 8*60); err == nil {
		t.Fatal("expected rejection before opening time")
	}
	if err := withinOpeningHours(fac, "2026-09-07", 19*60+30, 20*60+30); err == nil {
		t.Fatal("expected rejection past closing time")
	}
	// Sunday is marked closed.
	if err := withinOpeningHours(fac, "2026-09-06", 10*60, 11*60); err == nil {
		t.Fatal("expected rejection on closed day")
	}
	// Tuesday has no entry, meaning unrestricted.
	if err := withinOpeningHours(fac, "2026-09-08", 6*60, 7*60); err != nil {
		t.Fatalf("unconfigured weekday should be unrestricted: %v", err)
	}

	// No hours configured at all: everything goes.
	open := &models.Facility{ID: "fac-2"}
	if err := withinOpeningHours(open, "2026-09-07", 0, 23*60); err != nil {
		t.Fatalf("facility without hours should be unrestricted: %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{540, 600, 600, 660, false}, // back to back
		{540, 600, 570, 630, true},  // partial overlap
		{540, 600, 540, 600, true},  // identical
		{540, 600, 500, 700, true},  // contained
		{540, 600, 660, 720, false}, // disjoint
	}
	for _, tc := range cases {
		if got := overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("overlaps(%d,%d,%d,%d) = %v, want %v", tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}
