package models

// CalendarEvent is the display read-model for one event on the user's
// calendar. It feeds the home week/month views only; conflict logic runs
// on BusyPeriod values instead.
type CalendarEvent struct {
	Title     string `json:"title"`
	TimeLabel string `json:"timeLabel"` // e.g. "Mon, Feb 23 · 9:00 AM - 10:00 AM"
	Location  string `json:"location,omitempty"`
	DayISO    string `json:"dayIso"`    // "2006-01-02" bucket key
	SlotLabel string `json:"slotLabel"` // e.g. "9:00 AM - 10:00 AM" or "All day"
	SortKey   int    `json:"sortKey"`   // minutes from midnight within the day
}

// DayColumn is one Monday-to-Sunday column of the home week view.
type DayColumn struct {
	DayISO string          `json:"dayIso"`
	Label  string          `json:"label"` // e.g. "Mon 23"
	Today  bool            `json:"today"`
	Events []CalendarEvent `json:"events"`
}

// MonthCell is one cell of a month grid. Leading/trailing cells from
// adjacent months carry InMonth=false.
type MonthCell struct {
	Date     string          `json:"date"`
	Day      int             `json:"day"`
	InMonth  bool            `json:"inMonth"`
	Today    bool            `json:"today"`
	Label    DayLabel        `json:"label,omitempty"`
	Events   []CalendarEvent `json:"events,omitempty"` // capped at 3
	Overflow int             `json:"overflow,omitempty"`
}

// MonthGrid is a month extended to full Monday-anchored weeks.
type MonthGrid struct {
	Label string        `json:"label"` // e.g. "February 2026"
	Weeks [][]MonthCell `json:"weeks"`
}
