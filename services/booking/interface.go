package booking

import (
	"context"
	"time"

	"secretariat/models"
	"secretariat/services/calendar"
	"secretariat/services/catalog"
	"secretariat/services/schedule"
)

// AvailabilityRequest selects what one availability render covers. All
// fields are optional; unknown or missing values degrade to defaults.
type AvailabilityRequest struct {
	BusinessID string
	ServiceID  string
	Date       string // "2006-01-02"
	View       string // "week" (default) or "month"
	SignedIn   bool
}

// BookingService resolves availability views and commits bookings. The
// user's calendar source is supplied per request because it depends on
// the session's credentials.
type BookingService interface {
	RenderAvailability(ctx context.Context, userSource calendar.UserBusySource, req AvailabilityRequest) *models.AvailabilityView
	Commit(ctx context.Context, userCalendar calendar.UserCalendar, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog  catalog.Directory
	Engine   *schedule.Engine
	Location *time.Location
}
