// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var errEmptyInput = errors.New("no date or time given")

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatDuration renders d as hours and minutes, e.g. "7h 45m".
func FormatDuration(d time.Duration) string {
	hrs, mins := MinsToHoursAndMins(Round(d.Minutes()))

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// WithDate returns the instant ms moved to the given calendar day in local
// time, keeping its clock time.
func WithDate(ms int64, year int, month time.Month, day int) int64 {
	t := time.UnixMilli(ms)

	return time.Date(
		year,
		month,
		day,
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond(),
		t.Location(),
	).UnixMilli()
}

// WithClock returns the instant ms with its local hour and minute replaced.
// Seconds are kept.
func WithClock(ms int64, hour, minute int) int64 {
	t := time.UnixMilli(ms)

	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		hour,
		minute,
		t.Second(),
		t.Nanosecond(),
		t.Location(),
	).UnixMilli()
}

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(s string) (year int, month time.Month, day int, err error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}

	return t.Year(), t.Month(), t.Day(), nil
}

// ParseClock parses a 24-hour HH:MM clock time.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("time must be in HH:MM format: %w", err)
	}

	return t.Hour(), t.Minute(), nil
}

// ParseInstant understands absolute dates as well as relative expressions
// such as "yesterday 23:30" or "2 hours ago", resolved against now.
func ParseInstant(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyInput
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q: %w", s, err)
	}

	return dt.Time, nil
}

// FormatInstant renders the epoch milliseconds ms in local time.
func FormatInstant(ms int64, twentyFourHour bool) string {
	layout := "Jan 02, 2006 03:04 PM"
	if twentyFourHour {
		layout = "Jan 02, 2006 15:04"
	}

	return time.UnixMilli(ms).Format(layout)
}
