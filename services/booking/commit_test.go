package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"secretariat/models"
	"secretariat/services/calendar"
	"secretariat/services/catalog"
	"secretariat/services/schedule"
)

// stubUserCalendar records reads and writes so tests can assert the
// commit path's ordering guarantees.
type stubUserCalendar struct {
	busy      []models.BusyPeriod
	busyErr   error
	busyCalls int

	eventID   string
	createErr error
	created   []calendar.EventWrite
}

func (s *stubUserCalendar) BusyPeriods(ctx context.Context, from, to time.Time) ([]models.BusyPeriod, error) {
	s.busyCalls++
	return s.busy, s.busyErr
}

func (s *stubUserCalendar) CreateEvent(ctx context.Context, write calendar.EventWrite) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = append(s.created, write)
	if s.eventID == "" {
		return "evt-1", nil
	}
	return s.eventID, nil
}

func testService() *DefaultBookingService {
	loc := time.UTC
	return &DefaultBookingService{
		Catalog: catalog.NewStaticDirectory(),
		Engine: &schedule.Engine{
			BusinessBusy: calendar.NewTemplateBusySource(loc),
			Location:     loc,
		},
		Location: loc,
	}
}

func fadeCutRequest(slotStart string) models.BookingRequest {
	return models.BookingRequest{
		BusinessID: "crimson-cuts",
		ServiceID:  "fade-cut",
		Date:       "2026-02-23", // a Monday
		SlotStart:  slotStart,
	}
}

func TestCommitSuccess(t *testing.T) {
	svc := testService()
	cal := &stubUserCalendar{eventID: "evt-42"}

	conf, err := svc.Commit(context.Background(), cal, fadeCutRequest("09:00"))
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}

	if conf.ServiceName != "Fade + Style" || conf.BusinessName != "Crimson Cuts" {
		t.Errorf("confirmation names = %q at %q", conf.ServiceName, conf.BusinessName)
	}
	if conf.TimeLabel != "9:00 AM" || conf.EndLabel != "9:30 AM" {
		t.Errorf("time labels = %q - %q", conf.TimeLabel, conf.EndLabel)
	}
	if conf.DayLabel != "Mon, Feb 23" {
		t.Errorf("day label = %q", conf.DayLabel)
	}
	if conf.EventID != "evt-42" {
		t.Errorf("event id = %q", conf.EventID)
	}
	if conf.BookingID == "" {
		t.Error("missing booking id")
	}

	if cal.busyCalls != 1 {
		t.Errorf("busy periods read %d times, want 1", cal.busyCalls)
	}
	if len(cal.created) != 1 {
		t.Fatalf("expected 1 event write, got %d", len(cal.created))
	}
	write := cal.created[0]
	if write.Summary != "Fade + Style at Crimson Cuts" {
		t.Errorf("event summary = %q", write.Summary)
	}
	if !strings.Contains(write.Description, conf.BookingID) {
		t.Error("event description missing the booking marker")
	}
	wantStart := time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
	if !write.Start.Equal(wantStart) || !write.End.Equal(wantStart.Add(30*time.Minute)) {
		t.Errorf("event window = %v - %v", write.Start, write.End)
	}
}

func TestCommitRejectsStaleSlot(t *testing.T) {
	svc := testService()
	// Fresh reload shows the slot taken since the view was rendered.
	cal := &stubUserCalendar{busy: []models.BusyPeriod{{
		Start: time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC),
	}}}

	_, err := svc.Commit(context.Background(), cal, fadeCutRequest("09:00"))
	if ErrorCode(err) != CodeSlotTaken {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if len(cal.created) != 0 {
		t.Errorf("rejected booking still wrote %d events", len(cal.created))
	}
}

func TestCommitRejectsBusinessConflict(t *testing.T) {
	svc := testService()
	cal := &stubUserCalendar{}

	// The business template blocks the Monday lunch hour.
	_, err := svc.Commit(context.Background(), cal, fadeCutRequest("12:00"))
	if ErrorCode(err) != CodeSlotTaken {
		t.Fatalf("expected slot_taken, got %v", err)
	}
	if len(cal.created) != 0 {
		t.Errorf("rejected booking still wrote %d events", len(cal.created))
	}
}

func TestCommitRejectsMalformedInput(t *testing.T) {
	svc := testService()

	t.Run("bad clock rejects before any reload", func(t *testing.T) {
		cal := &stubUserCalendar{}
		_, err := svc.Commit(context.Background(), cal, fadeCutRequest("not-a-clock"))
		if ErrorCode(err) != CodeInvalidSlot {
			t.Fatalf("expected invalid_slot, got %v", err)
		}
		if cal.busyCalls != 0 {
			t.Errorf("busy periods read %d times before validation", cal.busyCalls)
		}
		if len(cal.created) != 0 {
			t.Error("invalid request wrote an event")
		}
	})

	t.Run("bad date rejects before any reload", func(t *testing.T) {
		cal := &stubUserCalendar{}
		req := fadeCutRequest("09:00")
		req.Date = "Feb 23"
		_, err := svc.Commit(context.Background(), cal, req)
		if ErrorCode(err) != CodeInvalidSlot {
			t.Fatalf("expected invalid_slot, got %v", err)
		}
		if cal.busyCalls != 0 {
			t.Errorf("busy periods read %d times before validation", cal.busyCalls)
		}
	})

	t.Run("off-grid start has no matching slot", func(t *testing.T) {
		cal := &stubUserCalendar{}
		_, err := svc.Commit(context.Background(), cal, fadeCutRequest("09:10"))
		if ErrorCode(err) != CodeInvalidSlot {
			t.Fatalf("expected invalid_slot, got %v", err)
		}
	})

	t.Run("closed weekday has no slots at all", func(t *testing.T) {
		cal := &stubUserCalendar{}
		req := fadeCutRequest("09:00")
		req.Date = "2026-02-22" // Sunday
		_, err := svc.Commit(context.Background(), cal, req)
		if ErrorCode(err) != CodeInvalidSlot {
			t.Fatalf("expected invalid_slot, got %v", err)
		}
	})
}

func TestCommitProviderFailures(t *testing.T) {
	svc := testService()

	t.Run("failed reload blocks the commit", func(t *testing.T) {
		cal := &stubUserCalendar{busyErr: errors.New("calendar API 503")}
		_, err := svc.Commit(context.Background(), cal, fadeCutRequest("09:00"))
		if ErrorCode(err) != CodeProviderError {
			t.Fatalf("expected provider_error, got %v", err)
		}
		if len(cal.created) != 0 {
			t.Error("commit wrote an event despite the failed reload")
		}
	})

	t.Run("failed write rejects the booking", func(t *testing.T) {
		cal := &stubUserCalendar{createErr: errors.New("calendar API 500")}
		_, err := svc.Commit(context.Background(), cal, fadeCutRequest("09:00"))
		if ErrorCode(err) != CodeProviderError {
			t.Fatalf("expected provider_error, got %v", err)
		}
	})
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(NewSlotTakenError()); got != CodeSlotTaken {
		t.Errorf("ErrorCode = %q", got)
	}
	if got := ErrorCode(errors.New("plain")); got != "" {
		t.Errorf("non-booking error code = %q, want empty", got)
	}
	if got := ErrorCode(nil); got != "" {
		t.Errorf("nil error code = %q, want empty", got)
	}
}
