package models

import "time"

// BookingRequest carries one booking attempt from the transport layer.
// Transient; it exists only for the duration of a single commit.
type BookingRequest struct {
	BusinessID string `json:"businessId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"`      // "2006-01-02"
	SlotStart  string `json:"slotStart" binding:"required"` // "HH:MM"
}

// BookingConfirmation holds the display facts returned after a
// successful commit. The calendar event itself is the state of record.
type BookingConfirmation struct {
	BookingID    string    `json:"bookingId"`
	EventID      string    `json:"eventId"`
	BusinessName string    `json:"businessName"`
	ServiceName  string    `json:"serviceName"`
	Location     string    `json:"location,omitempty"`
	Date         string    `json:"date"`
	DayLabel     string    `json:"dayLabel"`  // e.g. "Mon, Feb 23"
	TimeLabel    string    `json:"timeLabel"` // e.g. "9:00 AM"
	EndLabel     string    `json:"endLabel"`  // e.g. "9:30 AM"
	CommittedAt  time.Time `json:"committedAt"`
}

// AvailabilityView is the serializable view model for one availability
// request: the selected day's slots plus the surrounding aggregates.
type AvailabilityView struct {
	Business    Business     `json:"business"`
	Service     Service      `json:"service"`
	Date        string       `json:"date"`
	SignedIn    bool         `json:"signedIn"`
	Notice      string       `json:"notice,omitempty"` // non-fatal provider degrade message
	Slots       []Slot       `json:"slots"`
	Week        []DayStatus  `json:"week"`
	Month       *MonthGrid   `json:"month,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}
