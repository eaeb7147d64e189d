package calendar

import (
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"secretariat/models"
	"secretariat/utils"
)

const dayLabelLayout = "Mon, Jan 2"

// DisplayEventsFromProvider converts provider events into the display
// read-model used by the home week and month views. Cancelled events are
// dropped; events with unusable timing render as "time unavailable"
// instead of aborting the view.
func DisplayEventsFromProvider(events []*gcal.Event, loc *time.Location) []models.CalendarEvent {
	var out []models.CalendarEvent
	for _, ev := range events {
		if ev == nil || ev.Status == "cancelled" {
			continue
		}
		out = append(out, displayEvent(ev, loc))
	}
	return out
}

func displayEvent(ev *gcal.Event, loc *time.Location) models.CalendarEvent {
	title := ev.Summary
	if title == "" {
		title = "(No title)"
	}
	event := models.CalendarEvent{
		Title:     title,
		TimeLabel: "Time unavailable",
		SlotLabel: "Time unavailable",
		Location:  ev.Location,
	}

	if ev.Start == nil {
		return event
	}
	start, ok := utils.NormalizeProviderInstant(ev.Start.DateTime, ev.Start.Date, loc)
	if !ok {
		return event
	}

	event.DayISO = start.Format("2006-01-02")
	allDay := ev.Start.DateTime == "" && ev.Start.Date != ""
	if allDay {
		event.SlotLabel = "All day"
		event.TimeLabel = fmt.Sprintf("%s · All day", start.Format(dayLabelLayout))
		return event
	}

	event.SortKey = start.Hour()*60 + start.Minute()
	startLabel := models.ClockOfDay(event.SortKey).Label()
	event.SlotLabel = startLabel
	event.TimeLabel = fmt.Sprintf("%s · %s", start.Format(dayLabelLayout), startLabel)

	if ev.End != nil {
		if end, ok := utils.NormalizeProviderInstant(ev.End.DateTime, ev.End.Date, loc); ok {
			endLabel := models.ClockOfDay(end.Hour()*60 + end.Minute()).Label()
			event.SlotLabel = fmt.Sprintf("%s - %s", startLabel, endLabel)
			event.TimeLabel = fmt.Sprintf("%s · %s", start.Format(dayLabelLayout), event.SlotLabel)
		}
	}
	return event
}
