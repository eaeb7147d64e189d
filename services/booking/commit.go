package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"secretariat/models"
	"secretariat/services/calendar"
	"secretariat/services/schedule"
	"secretariat/utils"
)

// bookingMarkerPrefix tags committed events in their description so a
// later reconciliation pass can detect duplicate writes for the same
// attempt. Read-then-write against the provider is unserialized; the
// provider's own event state is the final arbiter.
const bookingMarkerPrefix = "secretariat-booking:"

// Commit runs one booking attempt: Requested -> Validated -> Committed,
// or Requested -> Rejected. The requested slot is revalidated against a
// fresh busy-period read; a view rendered earlier in the session is
// never trusted, because the remote calendar may have changed since.
func (s *DefaultBookingService) Commit(ctx context.Context, userCalendar calendar.UserCalendar, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	business, service := s.Catalog.Service(req.BusinessID, req.ServiceID)

	// Parse failures reject before any busy-period reload is attempted.
	date, err := utils.ParseDate(req.Date, s.Location)
	if err != nil {
		return nil, NewInvalidSlotError(fmt.Sprintf("invalid booking date %q", req.Date))
	}
	start, err := utils.ParseClockOfDay(req.SlotStart)
	if err != nil {
		return nil, NewInvalidSlotError(fmt.Sprintf("invalid slot start %q", req.SlotStart))
	}

	weekStart := schedule.MondayOf(date)
	userBusy, err := userCalendar.BusyPeriods(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		// Unlike read paths, the commit path never assumes free on a
		// failed reload; that could double-book.
		logger.Error("Busy-period reload failed during commit",
			zap.String("business", business.ID), zap.Error(err))
		return nil, NewProviderError(err)
	}

	slots := s.Engine.GenerateDaySlots(business, service, date, userBusy)
	var requested *models.Slot
	for i := range slots {
		if slots[i].Start == start {
			requested = &slots[i]
			break
		}
	}
	if requested == nil {
		return nil, NewInvalidSlotError(fmt.Sprintf("no %s slot starts at %s on %s",
			service.Name, start.Label(), req.Date))
	}
	if !requested.Bookable {
		logger.Info("Booking rejected, slot no longer free",
			zap.String("business", business.ID),
			zap.String("date", requested.Date),
			zap.String("slot", requested.StartLabel),
			zap.String("reason", string(requested.Reason)))
		return nil, NewSlotTakenError()
	}

	bookingID := uuid.New().String()
	eventID, err := userCalendar.CreateEvent(ctx, calendar.EventWrite{
		Summary: fmt.Sprintf("%s at %s", service.Name, business.Name),
		Description: fmt.Sprintf("%s (%d min) at %s, booked through Secretariat.\n%s%s",
			service.Name, service.DurationMinutes, business.Name, bookingMarkerPrefix, bookingID),
		Location: business.Location,
		Start:    requested.Start.At(date, s.Location),
		End:      requested.End.At(date, s.Location),
	})
	if err != nil {
		logger.Error("Calendar write failed, booking not committed",
			zap.String("business", business.ID), zap.Error(err))
		return nil, NewProviderError(err)
	}

	logger.Info("Booking committed",
		zap.String("bookingId", bookingID),
		zap.String("eventId", eventID),
		zap.String("business", business.ID),
		zap.String("service", service.ID),
		zap.String("date", requested.Date),
		zap.String("slot", requested.StartLabel))

	return &models.BookingConfirmation{
		BookingID:    bookingID,
		EventID:      eventID,
		BusinessName: business.Name,
		ServiceName:  service.Name,
		Location:     business.Location,
		Date:         requested.Date,
		DayLabel:     date.Format("Mon, Jan 2"),
		TimeLabel:    requested.StartLabel,
		EndLabel:     requested.EndLabel,
		CommittedAt:  time.Now(),
	}, nil
}
