package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"secretariat/models"
	"secretariat/services/calendar"
	"secretariat/services/schedule"
	"secretariat/utils"
)

const dateLayout = "2006-01-02"

// userCalendarNotice is shown when a live calendar read fails. The view
// still renders with business-side availability only.
const userCalendarNotice = "We couldn't reach your calendar. Availability may not reflect your own events."

// RenderAvailability computes the availability view model for one
// business, service and date. Every failure on this path degrades:
// malformed dates default to today, a failed or missing user calendar
// becomes "no known conflicts" plus a notice. It never fails.
func (s *DefaultBookingService) RenderAvailability(ctx context.Context, userSource calendar.UserBusySource, req AvailabilityRequest) *models.AvailabilityView {
	logger := utils.GetLogger()

	business, service := s.Catalog.Service(req.BusinessID, req.ServiceID)

	date, err := utils.ParseDate(req.Date, s.Location)
	if err != nil {
		if req.Date != "" {
			logger.Warn("Malformed schedule date, defaulting to today",
				zap.String("date", req.Date), zap.Error(err))
		}
		now := time.Now().In(s.Location)
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location)
	}

	from, to := s.busyWindow(date, req.View)

	var notice string
	userBusy, err := userSource.BusyPeriods(ctx, from, to)
	if err != nil {
		logger.Warn("User calendar read failed, rendering business availability only",
			zap.String("business", business.ID), zap.Error(err))
		notice = userCalendarNotice
		userBusy = nil
	}

	view := &models.AvailabilityView{
		Business:    business,
		Service:     service,
		Date:        date.Format(dateLayout),
		SignedIn:    req.SignedIn,
		Notice:      notice,
		Slots:       s.Engine.GenerateDaySlots(business, service, date, userBusy),
		Week:        s.Engine.BuildWeekStatus(business, service, date, userBusy),
		Suggestions: s.Engine.NextBookableSlots(business, service, date, userBusy, schedule.DefaultSuggestionLimit),
	}
	if req.View == "month" {
		today := time.Now().In(s.Location)
		view.Month = s.Engine.BuildMonthGrid(business, service, date, today, userBusy, nil)
	}
	return view
}

// busyWindow is the range of user busy periods one render needs: the
// anchor's week, or the full grid range for a month view.
func (s *DefaultBookingService) busyWindow(date time.Time, view string) (time.Time, time.Time) {
	if view == "month" {
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, s.Location)
		last := first.AddDate(0, 1, -1)
		return schedule.MondayOf(first), schedule.MondayOf(last).AddDate(0, 0, 7)
	}
	monday := schedule.MondayOf(date)
	return monday, monday.AddDate(0, 0, 7)
}
