// Package calendar supplies busy-period sources for scheduling: the
// signed-in user's Google Calendar (live or signed-out) and the static
// per-weekday business template. Both sides honor the same contract:
// given a window, return possibly-empty busy intervals.
package calendar

import (
	"context"
	"time"

	"secretariat/models"
)

// UserBusySource yields busy periods from the user's personal calendar
// over a window. Implementations may return unsorted or overlapping
// intervals; the slot generator tests each candidate independently.
type UserBusySource interface {
	BusyPeriods(ctx context.Context, from, to time.Time) ([]models.BusyPeriod, error)
}

// EventWrite describes one calendar event to be committed.
type EventWrite struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// EventWriter commits a booking onto the user's calendar. Write failures
// are never swallowed; they represent booking intent that must be
// reported to the caller.
type EventWriter interface {
	CreateEvent(ctx context.Context, write EventWrite) (string, error)
}

// UserCalendar is the full read+write contract the booking committer
// revalidates and writes through.
type UserCalendar interface {
	UserBusySource
	EventWriter
}

// BusinessBusySource yields a business's busy periods for one day.
// Deterministic; never fails. A missing template entry means the
// business has no conflicts that day.
type BusinessBusySource interface {
	BusyPeriods(businessID string, date time.Time) []models.BusyPeriod
}
