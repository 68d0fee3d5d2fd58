package utils

import (
	"fmt"
	"time"
)

// MonthBounds returns the first instant of t's calendar month and the first
// instant of the following month, both in t's location. A timestamp ts is
// inside the month when start <= ts < end.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// DaysAgo returns the instant exactly n calendar days before t.
func DaysAgo(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns the number of days in the month of t.
func LastDayOfMonth(t time.Time) int {
	_, end := MonthBounds(t)
	return end.AddDate(0, 0, -1).Day()
}

// ParseMonth parses a YYYY-MM string into the first instant of that month in loc.
// A full YYYY-MM-DD or RFC3339 value is accepted too and truncated to its month.
func ParseMonth(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			start, _ := MonthBounds(t)
			return start, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		start, _ := MonthBounds(t.In(loc))
		return start, nil
	}

	return time.Time{}, fmt.Errorf("invalid month format, expected YYYY-MM, got %s", value)
}
