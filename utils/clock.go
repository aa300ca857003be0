package utils

import (
	"fmt"
	"time"
)

// DateLayout is the time-zone-naive calendar date format used across the slot store.
const DateLayout = "2006-01-02"

// ParseClock converts a 24-hour "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as a "HH:MM" string.
// The caller guarantees 0 <= m < 1440.
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// SlotStartAt combines a slot's date and start time into one instant,
// interpreted in the local time zone like every other wall-clock value here.
func SlotStartAt(date, startTime string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	mins, err := ParseClock(startTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), mins/60, mins%60, 0, 0, time.Local), nil
}
