package schedule

import (
	"fmt"
	"sort"
	"time"

	"secretariat/models"
)

// limitedThreshold is the bookable-count boundary between a "limited"
// and an "open" day.
const limitedThreshold = 5

// DefaultSuggestionLimit caps "next bookable slots" suggestions.
const DefaultSuggestionLimit = 3

// monthCellEventCap caps the events shown per month-grid cell.
const monthCellEventCap = 3

// MondayOf normalizes a date to the Monday of its week.
func MondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// DayStatusFor computes the aggregate label for one day from its
// bookable slot count. A closed weekday is "closed" regardless of count.
func (e *Engine) DayStatusFor(business models.Business, service models.Service, date time.Time, userBusy []models.BusyPeriod) models.DayStatus {
	status := models.DayStatus{
		Date:    date.Format(dateLayout),
		Weekday: date.Weekday().String(),
	}
	if !business.OpenOn(date.Weekday()) {
		status.Label = models.DayClosed
		return status
	}

	for _, slot := range e.GenerateDaySlots(business, service, date, userBusy) {
		if slot.Bookable {
			status.BookableCount++
		}
	}
	switch {
	case status.BookableCount == 0:
		status.Label = models.DayFull
	case status.BookableCount < limitedThreshold:
		status.Label = models.DayLimited
	default:
		status.Label = models.DayOpen
	}
	return status
}

// BuildWeekStatus computes the seven DayStatus entries for the week
// containing anchor, normalized to its Monday.
func (e *Engine) BuildWeekStatus(business models.Business, service models.Service, anchor time.Time, userBusy []models.BusyPeriod) []models.DayStatus {
	monday := MondayOf(anchor)
	week := make([]models.DayStatus, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, e.DayStatusFor(business, service, monday.AddDate(0, 0, i), userBusy))
	}
	return week
}

// NextBookableSlots scans forward day-by-day from anchor through the end
// of that week only, collecting bookable slots in chronological order.
// Fewer than limit results (possibly zero) is not an error.
func (e *Engine) NextBookableSlots(business models.Business, service models.Service, anchor time.Time, userBusy []models.BusyPeriod, limit int) []models.Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	weekEnd := MondayOf(anchor).AddDate(0, 0, 7)

	var suggestions []models.Suggestion
	for day := anchor; day.Before(weekEnd); day = day.AddDate(0, 0, 1) {
		for _, slot := range e.GenerateDaySlots(business, service, day, userBusy) {
			if !slot.Bookable {
				continue
			}
			suggestions = append(suggestions, models.Suggestion{
				Date:      slot.Date,
				DayLabel:  day.Format("Mon, Jan 2"),
				Start:     slot.Start,
				End:       slot.End,
				TimeLabel: fmt.Sprintf("%s - %s", slot.StartLabel, slot.EndLabel),
			})
			if len(suggestions) == limit {
				return suggestions
			}
		}
	}
	return suggestions
}

// BuildMonthGrid extends anchor's month to full Monday-anchored weeks,
// including leading and trailing adjacent-month days. Cells carry the
// day's availability label and up to three display events with an
// overflow counter.
func (e *Engine) BuildMonthGrid(business models.Business, service models.Service, anchor, today time.Time, userBusy []models.BusyPeriod, events []models.CalendarEvent) *models.MonthGrid {
	return buildMonthGrid(e.Location, anchor, today, events, func(day time.Time) models.DayLabel {
		return e.DayStatusFor(business, service, day, userBusy).Label
	})
}

// EventsMonthGrid builds a month grid of display events only, with no
// availability labels. The home month view uses it.
func EventsMonthGrid(loc *time.Location, anchor, today time.Time, events []models.CalendarEvent) *models.MonthGrid {
	return buildMonthGrid(loc, anchor, today, events, nil)
}

func buildMonthGrid(loc *time.Location, anchor, today time.Time, events []models.CalendarEvent, labelFor func(time.Time) models.DayLabel) *models.MonthGrid {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	gridStart := MondayOf(first)
	gridEnd := MondayOf(last).AddDate(0, 0, 7)

	byDay := eventsByDay(events)
	todayISO := today.Format(dateLayout)

	grid := &models.MonthGrid{Label: first.Format("January 2006")}
	for weekStart := gridStart; weekStart.Before(gridEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		week := make([]models.MonthCell, 0, 7)
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			dayISO := day.Format(dateLayout)
			cell := models.MonthCell{
				Date:    dayISO,
				Day:     day.Day(),
				InMonth: day.Month() == first.Month(),
				Today:   dayISO == todayISO,
			}
			if labelFor != nil {
				cell.Label = labelFor(day)
			}
			dayEvents := byDay[dayISO]
			if len(dayEvents) > monthCellEventCap {
				cell.Overflow = len(dayEvents) - monthCellEventCap
				dayEvents = dayEvents[:monthCellEventCap]
			}
			cell.Events = dayEvents
			week = append(week, cell)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

// WeekColumns maps display events into Monday-to-Sunday columns, each
// column sorted by intra-day start time.
func WeekColumns(weekStart, today time.Time, events []models.CalendarEvent) []models.DayColumn {
	byDay := eventsByDay(events)
	todayISO := today.Format(dateLayout)

	columns := make([]models.DayColumn, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dayISO := day.Format(dateLayout)
		columns = append(columns, models.DayColumn{
			DayISO: dayISO,
			Label:  day.Format("Mon 2"),
			Today:  dayISO == todayISO,
			Events: byDay[dayISO],
		})
	}
	return columns
}

func eventsByDay(events []models.CalendarEvent) map[string][]models.CalendarEvent {
	byDay := make(map[string][]models.CalendarEvent)
	for _, ev := range events {
		if ev.DayISO == "" {
			continue
		}
		byDay[ev.DayISO] = append(byDay[ev.DayISO], ev)
	}
	for day := range byDay {
		sort.SliceStable(byDay[day], func(i, j int) bool {
			return byDay[day][i].SortKey < byDay[day][j].SortKey
		})
	}
	return byDay
}
