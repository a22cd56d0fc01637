package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the layout used for all dates on the wire, always rendered in UTC
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ClockLayout is the 24-hour time of day layout
const ClockLayout = "15:04"

// DayLayout is a calendar day without a time
const DayLayout = "2006-01-02"

// TruncateToDay returns midnight of the calendar day t falls on in location
func TruncateToDay(t time.Time, location *time.Location) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

// NextDay returns midnight of the day following day
func NextDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
}

// SameDay reports whether t1 and t2 fall on the same calendar day in location
func SameDay(t1 time.Time, t2 time.Time, location *time.Location) bool {
	return TruncateToDay(t1, location).Equal(TruncateToDay(t2, location))
}

// ParseClock parses an HH:MM value and places it on day
func ParseClock(value string, day time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("time %q is not in HH:MM format", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return time.Time{}, fmt.Errorf("time %q has an invalid hour", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return time.Time{}, fmt.Errorf("time %q has an invalid minute", value)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hours, minutes, 0, 0, day.Location()), nil
}

// FormatClock renders t as HH:MM in location
func FormatClock(t time.Time, location *time.Location) string {
	return t.In(location).Format(ClockLayout)
}

// FormatISO renders t as an ISO-8601 UTC timestamp with milliseconds
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseDay accepts either YYYY-MM-DD, interpreted in location, or an RFC 3339 timestamp
func ParseDay(value string, location *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DayLayout, value, location); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC 3339", value)
	}

	return t, nil
}
