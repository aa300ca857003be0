package timeslot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"playfield/models"
	"playfield/utils"
)

// minutesPerDay bounds every wall-clock value; a slot must start and end on
// the same calendar date.
const minutesPerDay = 24 * 60

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// EndTime derives a slot's end time from its start time and the owning
// service's fixed duration. All arithmetic is in integer minutes; slots whose
// end would cross midnight are rejected rather than truncated.
func EndTime(startTime string, durationMinutes int) (string, error) {
	if durationMinutes <= 0 {
		return "", newValidationError("service duration must be positive, got %d", durationMinutes)
	}
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return "", newValidationError("%v", err)
	}
	end := start + durationMinutes
	if end >= minutesPerDay {
		return "", newValidationError("slot starting at %s with duration %d min would cross midnight", startTime, durationMinutes)
	}
	return utils.FormatClock(end), nil
}

// ValidateShape checks that an explicit (start, end) pair is well formed and
// matches the service duration exactly. No rounding tolerance: durations are
// integer minutes throughout.
func ValidateShape(startTime, endTime string, durationMinutes int) error {
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return newValidationError("%v", err)
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return newValidationError("%v", err)
	}
	if end <= start {
		return newValidationError("end time %s must be after start time %s", endTime, startTime)
	}
	if end-start != durationMinutes {
		return newValidationError("slot duration %d min does not match service duration %d min", end-start, durationMinutes)
	}
	return nil
}

// slotTimes is one generated (date, start, end) triple.
type slotTimes struct {
	Date      string
	StartTime string
	EndTime   string
}

// expandBulk turns a bulk request into concrete (date, start, end) triples.
// Malformed time ranges are reported per item; date-level problems fail the
// whole expansion since no sensible partial result exists.
func expandBulk(req models.BulkSlotRequest, durationMinutes int) ([]slotTimes, []string, error) {
	baseDate, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, nil, newValidationError("%v", err)
	}

	dates := []time.Time{baseDate}
	if len(req.Recurring) > 0 {
		if req.EndDate == "" {
			return nil, nil, newValidationError("endDate is required with a recurring day list")
		}
		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, nil, newValidationError("%v", err)
		}
		if endDate.Before(baseDate) {
			return nil, nil, newValidationError("endDate %s is before date %s", req.EndDate, req.Date)
		}

		wanted := make(map[time.Weekday]bool, len(req.Recurring))
		for _, name := range req.Recurring {
			wd, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return nil, nil, newValidationError("unknown weekday %q", name)
			}
			wanted[wd] = true
		}

		for d := baseDate.AddDate(0, 0, 1); !d.After(endDate); d = d.AddDate(0, 0, 1) {
			if wanted[d.Weekday()] {
				dates = append(dates, d)
			}
		}
	}

	var (
		out     []slotTimes
		itemErr []string
		seen    = make(map[string]bool)
	)
	for _, d := range dates {
		date := d.Format(utils.DateLayout)
		for _, tr := range req.TimeSlots {
			endTime := tr.EndTime
			if endTime == "" {
				endTime, err = EndTime(tr.StartTime, durationMinutes)
				if err != nil {
					itemErr = append(itemErr, fmt.Sprintf("%s %s: %v", date, tr.StartTime, err))
					continue
				}
			} else if err := ValidateShape(tr.StartTime, endTime, durationMinutes); err != nil {
				itemErr = append(itemErr, fmt.Sprintf("%s %s: %v", date, tr.StartTime, err))
				continue
			}

			key := date + " " + tr.StartTime
			if seen[key] {
				itemErr = append(itemErr, fmt.Sprintf("%s %s: duplicate entry in request", date, tr.StartTime))
				continue
			}
			seen[key] = true
			out = append(out, slotTimes{Date: date, StartTime: tr.StartTime, EndTime: endTime})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, itemErr, nil
}

// withinOpeningHours checks a slot against the facility's hours for its
// weekday. A facility with no configured hours for that day is unrestricted.
func withinOpeningHours(facility *models.Facility, date string, startMin, endMin int) error {
	if len(facility.OpeningHours) == 0 {
		return nil
	}
	d, err := utils.ParseDate(date)
	if err != nil {
		return newValidationError("%v", err)
	}
	hours, ok := facility.OpeningHours[strings.ToLower(d.Weekday().String())]
	if !ok {
		return nil
	}
	if hours.Closed {
		return newValidationError("facility is closed on %s", d.Weekday())
	}
	open, err := utils.ParseClock(hours.Open)
	if err != nil {
		return fmt.Errorf("facility %s has malformed opening hours: %w", facility.ID, err)
	}
	closeAt, err := utils.ParseClock(hours.Close)
	if err != nil {
		return fmt.Errorf("facility %s has malformed opening hours: %w", facility.ID, err)
	}
	if startMin < open || endMin > closeAt {
		return newValidationError("slot %s-%s is outside opening hours %s-%s",
			utils.FormatClock(startMin), utils.FormatClock(endMin), hours.Open, hours.Close)
	}
	return nil
}

// overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
