package calendar

import (
	"context"
	"time"

	"secretariat/models"
)

// SignedOutSource is the UserBusySource used when no valid session
// credentials are present. It reports no conflicts, which callers must
// read as "unknown, assume free" - availability shown to a signed-out
// user may be stale against their real calendar.
type SignedOutSource struct{}

// BusyPeriods always returns an empty set.
func (SignedOutSource) BusyPeriods(ctx context.Context, from, to time.Time) ([]models.BusyPeriod, error) {
	return nil, nil
}
