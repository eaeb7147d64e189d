// Package schedule computes bookable slots and the week/month aggregates
// built from them. All slot math is pure; busy periods are supplied by
// the calendar sources and recomputed per request.
package schedule

import (
	"time"

	"secretariat/models"
	"secretariat/services/calendar"
)

// SlotStepMinutes is the fixed cadence at which candidate slot starts
// are generated inside a service's operating window.
const SlotStepMinutes = 15

const dateLayout = "2006-01-02"

// Engine generates and classifies candidate slots for one business and
// service against business-side and user-side busy periods.
type Engine struct {
	BusinessBusy calendar.BusinessBusySource
	Location     *time.Location
}

// GenerateDaySlots enumerates candidate slots for one calendar day.
// A weekday outside the business's open set yields no slots at all (a
// closed day, not an "all unavailable" day). Slots are half-open against
// busy intervals, so a slot ending exactly when a busy period starts is
// not a conflict; back-to-back bookings are legal.
func (e *Engine) GenerateDaySlots(business models.Business, service models.Service, date time.Time, userBusy []models.BusyPeriod) []models.Slot {
	if !business.OpenOn(date.Weekday()) {
		return nil
	}

	businessSpans := e.minuteSpans(date, e.BusinessBusy.BusyPeriods(business.ID, date))
	userSpans := e.minuteSpans(date, userBusy)

	opening := service.WindowStart
	closing := service.WindowEnd
	duration := models.ClockOfDay(service.DurationMinutes)

	var slots []models.Slot
	for start := opening; start+duration <= closing; start += SlotStepMinutes {
		end := start + duration
		businessBusy := overlapsAny(start, end, businessSpans)
		userBusyHere := overlapsAny(start, end, userSpans)
		reason := classify(businessBusy, userBusyHere)

		slots = append(slots, models.Slot{
			Date:         date.Format(dateLayout),
			Start:        start,
			End:          end,
			StartLabel:   start.Label(),
			EndLabel:     end.Label(),
			BusinessBusy: businessBusy,
			UserBusy:     userBusyHere,
			Reason:       reason,
			StatusLabel:  reason.StatusLabel(),
			Bookable:     reason == models.ReasonAvailable,
		})
	}
	return slots
}

// minuteSpans clips busy periods to the given day and converts them to
// minutes-from-midnight intervals.
func (e *Engine) minuteSpans(date time.Time, periods []models.BusyPeriod) [][2]int {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, e.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var spans [][2]int
	for _, p := range periods {
		if !p.End.After(dayStart) || !dayEnd.After(p.Start) {
			continue
		}
		start, end := p.Start, p.End
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		spans = append(spans, [2]int{
			int(start.Sub(dayStart) / time.Minute),
			int(end.Sub(dayStart) / time.Minute),
		})
	}
	return spans
}

// overlapsAny runs the open-interval overlap test against every span:
// a candidate [start, end) conflicts iff start < spanEnd && end > spanStart.
func overlapsAny(start, end models.ClockOfDay, spans [][2]int) bool {
	for _, s := range spans {
		if int(start) < s[1] && int(end) > s[0] {
			return true
		}
	}
	return false
}

func classify(businessBusy, userBusy bool) models.SlotReason {
	switch {
	case businessBusy && userBusy:
		return models.ReasonBothBusy
	case businessBusy:
		return models.ReasonBusinessBusy
	case userBusy:
		return models.ReasonUserBusy
	}
	return models.ReasonAvailable
}
