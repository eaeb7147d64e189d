package models

import "time"

// Business is a bookable business loaded from the static catalog.
type Business struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	Description  string         `json:"description,omitempty"`
	OpenWeekdays []time.Weekday `json:"openWeekdays"` // 0 = Sunday ... 6 = Saturday
	Services     []Service      `json:"services"`
}

// OpenOn reports whether the business takes bookings on the given weekday.
func (b Business) OpenOn(day time.Weekday) bool {
	for _, d := range b.OpenWeekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Service is a bookable offering that belongs to exactly one business.
type Service struct {
	ID              string     `json:"id"`
	BusinessID      string     `json:"businessId"`
	Name            string     `json:"name"`
	DurationMinutes int        `json:"durationMinutes"`
	WindowStart     ClockOfDay `json:"windowStart"` // earliest slot start
	WindowEnd       ClockOfDay `json:"windowEnd"`   // latest slot end
}
