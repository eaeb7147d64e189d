package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"secretariat/models"
)

const dateLayout = "2006-01-02"

// FormatError reports malformed clock or date text. Read paths degrade
// to a default value on this error; they never abort.
type FormatError struct {
	Input string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed value %q, want %s", e.Input, e.Want)
}

// ParseClockOfDay parses "HH:MM" (24-hour) into a ClockOfDay.
func ParseClockOfDay(text string) (models.ClockOfDay, error) {
	hourText, minuteText, ok := strings.Cut(text, ":")
	if !ok {
		return 0, &FormatError{Input: text, Want: "HH:MM"}
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 0 || hour > 23 {
		return 0, &FormatError{Input: text, Want: "HH:MM"}
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil || len(minuteText) != 2 || minute < 0 || minute > 59 {
		return 0, &FormatError{Input: text, Want: "HH:MM"}
	}
	return models.ClockOfDay(hour*60 + minute), nil
}

// FormatClockOfDay renders a clock as a 12-hour label without a leading
// zero, e.g. "9:05 AM".
func FormatClockOfDay(clock models.ClockOfDay) string {
	return clock.Label()
}

// ParseDate parses "2006-01-02" into a midnight instant in loc.
func ParseDate(text string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, text, loc)
	if err != nil {
		return time.Time{}, &FormatError{Input: text, Want: dateLayout}
	}
	return date, nil
}

// ResolveSchedulingTimezone resolves a configured timezone identifier.
// Unknown names fall back to UTC so a bad timezone string can never
// block rendering a calendar view.
func ResolveSchedulingTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		GetLogger().Warn("Unknown scheduling timezone, falling back to UTC",
			zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// NormalizeProviderInstant converts a calendar-provider timestamp into a
// single local instant in loc. dateTime may be zoned RFC 3339 or a naive
// local timestamp; date is an all-day "2006-01-02" value. Unrecognized
// shapes return ok=false rather than an error, since absent timing
// degrades to "time unavailable" display.
func NormalizeProviderInstant(dateTime, date string, loc *time.Location) (time.Time, bool) {
	if dateTime != "" {
		if t, err := time.Parse(time.RFC3339, dateTime); err == nil {
			return t.In(loc), true
		}
		// Naive timestamps are assumed to already be local.
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", dateTime, loc); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	if date != "" {
		if t, err := time.ParseInLocation(dateLayout, date, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
