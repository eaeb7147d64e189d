package models

import (
	"fmt"
	"time"
)

// ClockOfDay is a time of day expressed in minutes from midnight
// (e.g., 540 for 9:00 AM). Slots and service windows use this
// representation so slot math stays plain integer arithmetic.
type ClockOfDay int

// Hour returns the 24-hour clock hour component.
func (c ClockOfDay) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c ClockOfDay) Minute() int { return int(c) % 60 }

// Label renders the clock as a 12-hour label without a leading zero,
// e.g. "9:05 AM" or "12:30 PM".
func (c ClockOfDay) Label() string {
	hour := c.Hour() % 24
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, c.Minute(), suffix)
}

// At anchors the clock onto a calendar date in the given location.
func (c ClockOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

// BusyPeriod is a half-open local interval [Start, End) during which a
// calendar holder is unavailable. Never persisted; recomputed per request.
type BusyPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotReason explains why a candidate slot is or is not bookable.
type SlotReason string

const (
	ReasonAvailable    SlotReason = "available"
	ReasonUserBusy     SlotReason = "user_busy"
	ReasonBusinessBusy SlotReason = "business_busy"
	ReasonBothBusy     SlotReason = "both_busy"
)

// StatusLabel maps a reason to its fixed user-facing label.
func (r SlotReason) StatusLabel() string {
	switch r {
	case ReasonAvailable:
		return "Available (both free)"
	case ReasonUserBusy:
		return "Unavailable - You are busy"
	case ReasonBusinessBusy:
		return "Unavailable - Business is busy"
	case ReasonBothBusy:
		return "Unavailable - Both busy"
	}
	return "Unavailable"
}

// Slot is a candidate appointment instance for one service on one date.
type Slot struct {
	Date         string     `json:"date"` // "2006-01-02"
	Start        ClockOfDay `json:"start"`
	End          ClockOfDay `json:"end"`
	StartLabel   string     `json:"startLabel"`
	EndLabel     string     `json:"endLabel"`
	BusinessBusy bool       `json:"businessBusy"`
	UserBusy     bool       `json:"userBusy"`
	Reason       SlotReason `json:"reason"`
	StatusLabel  string     `json:"statusLabel"`
	Bookable     bool       `json:"bookable"`
}

// DayLabel is the aggregate availability of one calendar day.
type DayLabel string

const (
	DayClosed  DayLabel = "closed"
	DayFull    DayLabel = "full"
	DayLimited DayLabel = "limited"
	DayOpen    DayLabel = "open"
)

// DayStatus is one entry of a week strip.
type DayStatus struct {
	Date          string   `json:"date"`
	Weekday       string   `json:"weekday"`
	Label         DayLabel `json:"label"`
	BookableCount int      `json:"bookableCount"`
}

// Suggestion is one "next bookable slot" proposal.
type Suggestion struct {
	Date      string     `json:"date"`
	DayLabel  string     `json:"dayLabel"` // e.g. "Mon, Feb 23"
	Start     ClockOfDay `json:"start"`
	End       ClockOfDay `json:"end"`
	TimeLabel string     `json:"timeLabel"` // e.g. "9:00 AM - 9:30 AM"
}
