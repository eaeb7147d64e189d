package calendar

import (
	"time"

	"secretariat/models"
)

// clockSpan is a template interval in minutes from midnight.
type clockSpan struct {
	start models.ClockOfDay
	end   models.ClockOfDay
}

// TemplateBusySource serves business-side busy periods from a static
// per-weekday template. It is a simulation stand-in for a live business
// calendar behind the same busy-period contract, so a real source can
// replace it without touching the slot generator.
type TemplateBusySource struct {
	loc       *time.Location
	templates map[string]map[time.Weekday][]clockSpan
}

// NewTemplateBusySource returns the template source seeded for the demo
// catalog businesses.
func NewTemplateBusySource(loc *time.Location) *TemplateBusySource {
	return &TemplateBusySource{
		loc:       loc,
		templates: seedTemplates(),
	}
}

// BusyPeriods returns the template intervals for the business on the
// date's weekday, anchored onto that date. Missing entries mean no
// business-side conflicts.
func (t *TemplateBusySource) BusyPeriods(businessID string, date time.Time) []models.BusyPeriod {
	weekdays, ok := t.templates[businessID]
	if !ok {
		return nil
	}
	spans, ok := weekdays[date.Weekday()]
	if !ok {
		return nil
	}
	periods := make([]models.BusyPeriod, 0, len(spans))
	for _, span := range spans {
		periods = append(periods, models.BusyPeriod{
			Start: span.start.At(date, t.loc),
			End:   span.end.At(date, t.loc),
		})
	}
	return periods
}

func span(startHour, startMinute, endHour, endMinute int) clockSpan {
	return clockSpan{
		start: models.ClockOfDay(startHour*60 + startMinute),
		end:   models.ClockOfDay(endHour*60 + endMinute),
	}
}

func seedTemplates() map[string]map[time.Weekday][]clockSpan {
	weekdayLunch := []clockSpan{span(12, 0, 13, 0)}
	return map[string]map[time.Weekday][]clockSpan{
		"crimson-cuts": {
			time.Monday:    weekdayLunch,
			time.Tuesday:   weekdayLunch,
			time.Wednesday: {span(12, 0, 13, 0), span(15, 0, 16, 0)},
			time.Thursday:  weekdayLunch,
			time.Friday:    {span(12, 0, 13, 0), span(16, 0, 17, 0)},
			time.Saturday:  {span(13, 0, 14, 0)},
		},
		"palouse-dental": {
			time.Monday:    {span(8, 0, 9, 0)},
			time.Wednesday: {span(12, 0, 12, 30)},
			time.Friday:    {span(14, 0, 16, 0)},
		},
		"evergreen-physio": {
			time.Tuesday: {span(10, 0, 11, 0)},
			time.Friday:  {span(16, 0, 18, 0)},
		},
	}
}
