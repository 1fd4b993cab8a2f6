package domain

import (
	"fmt"
	"strings"
	"time"
)

// Calendar dates (session study date, streak day, plan date) are carried as
// time.Time values at UTC midnight. The year/month/day are those of the civil
// date in the study timezone, so equality and Weekday() work without a location.

// DateOf returns the civil date of t in loc as a UTC-midnight value.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a calendar date by n days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// SameDate compares only the year, month and day of a and b.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.UTC)
}

// WeekStart returns the first day of the week that contains date.
func WeekStart(date time.Time, first time.Weekday) time.Time {
	offset := (int(date.Weekday()) - int(first) + 7) % 7
	return AddDays(date, -offset)
}

// ParseWeekday parses "sunday" or "monday" (case-insensitive).
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("unsupported week start %q (want sunday or monday)", s)
	}
}

// ShortDayName returns the three-letter English label used by the weekly chart.
func ShortDayName(d time.Weekday) string {
	return d.String()[:3]
}
