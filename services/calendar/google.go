package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"secretariat/models"
	"secretariat/utils"
)

// windowPadding widens every read window by a day on each side to
// absorb timezone edge effects around midnight.
const windowPadding = 24 * time.Hour

const primaryCalendarID = "primary"

// GoogleCalendarSource reads and writes the signed-in user's primary
// Google Calendar. It implements UserCalendar.
type GoogleCalendarSource struct {
	svc *gcal.Service
	loc *time.Location
}

// NewGoogleCalendarSource builds a source authorized by the session's
// token bundle.
func NewGoogleCalendarSource(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token, loc *time.Location) (*GoogleCalendarSource, error) {
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	return &GoogleCalendarSource{svc: svc, loc: loc}, nil
}

// BusyPeriods lists events overlapping the padded window and converts
// them to local-naive busy intervals. Cancelled and transparent ("free")
// events do not block slots.
func (g *GoogleCalendarSource) BusyPeriods(ctx context.Context, from, to time.Time) ([]models.BusyPeriod, error) {
	result, err := g.svc.Events.List(primaryCalendarID).
		TimeMin(from.Add(-windowPadding).Format(time.RFC3339)).
		TimeMax(to.Add(windowPadding).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return BusyPeriodsFromEvents(result.Items, g.loc), nil
}

// BusyPeriodsFromEvents converts provider events into half-open busy
// periods, discarding events without usable timing and empty or
// inverted intervals.
func BusyPeriodsFromEvents(events []*gcal.Event, loc *time.Location) []models.BusyPeriod {
	var periods []models.BusyPeriod
	for _, ev := range events {
		if ev == nil || ev.Start == nil || ev.End == nil {
			continue
		}
		if ev.Status == "cancelled" || ev.Transparency == "transparent" {
			continue
		}
		start, ok := utils.NormalizeProviderInstant(ev.Start.DateTime, ev.Start.Date, loc)
		if !ok {
			continue
		}
		end, ok := utils.NormalizeProviderInstant(ev.End.DateTime, ev.End.Date, loc)
		if !ok {
			continue
		}
		if !end.After(start) {
			continue
		}
		periods = append(periods, models.BusyPeriod{Start: start, End: end})
	}
	return periods
}

// CreateEvent inserts a new event on the primary calendar and returns
// the provider's event id.
func (g *GoogleCalendarSource) CreateEvent(ctx context.Context, write EventWrite) (string, error) {
	event := &gcal.Event{
		Summary:     write.Summary,
		Description: write.Description,
		Location:    write.Location,
		Start: &gcal.EventDateTime{
			DateTime: write.Start.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: write.End.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
	}
	created, err := g.svc.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// ListEvents returns the display read-model for the user's calendar over
// a window, plus the calendar's display name.
func (g *GoogleCalendarSource) ListEvents(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, string, error) {
	name := "Your Calendar"
	if cal, err := g.svc.Calendars.Get(primaryCalendarID).Context(ctx).Do(); err == nil && cal.Summary != "" {
		name = cal.Summary
	}

	result, err := g.svc.Events.List(primaryCalendarID).
		TimeMin(from.Add(-windowPadding).Format(time.RFC3339)).
		TimeMax(to.Add(windowPadding).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, name, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return DisplayEventsFromProvider(result.Items, g.loc), name, nil
}
