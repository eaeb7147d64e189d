package schedule

import (
	"testing"
	"time"

	"secretariat/models"
)

// stubBusinessBusy serves canned busy periods keyed by date.
type stubBusinessBusy struct {
	periods map[string][]models.BusyPeriod
}

func (s stubBusinessBusy) BusyPeriods(businessID string, date time.Time) []models.BusyPeriod {
	return s.periods[date.Format("2006-01-02")]
}

func testEngine(businessBusy map[string][]models.BusyPeriod) *Engine {
	return &Engine{
		BusinessBusy: stubBusinessBusy{periods: businessBusy},
		Location:     time.UTC,
	}
}

func testBusiness() (models.Business, models.Service) {
	svc := models.Service{
		ID:              "fade-cut",
		BusinessID:      "crimson-cuts",
		Name:            "Fade + Style",
		DurationMinutes: 30,
		WindowStart:     9 * 60,
		WindowEnd:       17 * 60,
	}
	business := models.Business{
		ID:   "crimson-cuts",
		Name: "Crimson Cuts",
		OpenWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		Services: []models.Service{svc},
	}
	return business, svc
}

func slotAt(t *testing.T, slots []models.Slot, start models.ClockOfDay) models.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %d minutes", start)
	return models.Slot{}
}

func TestGenerateDaySlotsBounds(t *testing.T) {
	engine := testEngine(nil)
	business, svc := testBusiness()
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	slots := engine.GenerateDaySlots(business, svc, monday, nil)
	if len(slots) != 31 {
		t.Fatalf("expected 31 candidate slots, got %d", len(slots))
	}

	first, last := slots[0], slots[len(slots)-1]
	if first.Start != 540 || first.StartLabel != "9:00 AM" {
		t.Errorf("first slot = %d %q, want 540 \"9:00 AM\"", first.Start, first.StartLabel)
	}
	if last.End != 1020 || last.EndLabel != "5:00 PM" {
		t.Errorf("last slot end = %d %q, want 1020 \"5:00 PM\"", last.End, last.EndLabel)
	}

	for _, s := range slots {
		if s.End-s.Start != models.ClockOfDay(svc.DurationMinutes) {
			t.Errorf("slot %s has wrong duration", s.StartLabel)
		}
		if s.Start < svc.WindowStart || s.End > svc.WindowEnd {
			t.Errorf("slot %s escapes the operating window", s.StartLabel)
		}
		if !s.Bookable || s.Reason != models.ReasonAvailable {
			t.Errorf("slot %s should be bookable with no busy input", s.StartLabel)
		}
		if s.Date != "2026-02-23" {
			t.Errorf("slot date = %q, want 2026-02-23", s.Date)
		}
	}
}

func TestClosedWeekdayYieldsNoSlots(t *testing.T) {
	engine := testEngine(nil)
	business, svc := testBusiness()
	sunday := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)

	userBusy := []models.BusyPeriod{{
		Start: time.Date(2026, 2, 22, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC),
	}}
	if slots := engine.GenerateDaySlots(business, svc, sunday, userBusy); slots != nil {
		t.Errorf("closed weekday should yield no slots, got %d", len(slots))
	}
}

func TestSlotClassification(t *testing.T) {
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	engine := testEngine(map[string][]models.BusyPeriod{
		"2026-02-23": {{
			Start: time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 2, 23, 13, 0, 0, 0, time.UTC),
		}},
	})
	business, svc := testBusiness()
	userBusy := []models.BusyPeriod{{
		Start: time.Date(2026, 2, 23, 12, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 23, 14, 0, 0, 0, time.UTC),
	}}

	slots := engine.GenerateDaySlots(business, svc, monday, userBusy)

	cases := []struct {
		start    models.ClockOfDay
		reason   models.SlotReason
		label    string
		bookable bool
	}{
		{start: 11 * 60, reason: models.ReasonAvailable, label: "Available (both free)", bookable: true},
		// Ends exactly when the busy period starts; half-open means no conflict.
		{start: 11*60 + 30, reason: models.ReasonAvailable, label: "Available (both free)", bookable: true},
		{start: 12 * 60, reason: models.ReasonBusinessBusy, label: "Unavailable - Business is busy", bookable: false},
		{start: 12*60 + 30, reason: models.ReasonBothBusy, label: "Unavailable - Both busy", bookable: false},
		{start: 13 * 60, reason: models.ReasonUserBusy, label: "Unavailable - You are busy", bookable: false},
		{start: 13*60 + 30, reason: models.ReasonUserBusy, label: "Unavailable - You are busy", bookable: false},
		{start: 14 * 60, reason: models.ReasonAvailable, label: "Available (both free)", bookable: true},
	}
	for _, tc := range cases {
		slot := slotAt(t, slots, tc.start)
		if slot.Reason != tc.reason {
			t.Errorf("slot %s reason = %q, want %q", slot.StartLabel, slot.Reason, tc.reason)
		}
		if slot.StatusLabel != tc.label {
			t.Errorf("slot %s label = %q, want %q", slot.StartLabel, slot.StatusLabel, tc.label)
		}
		if slot.Bookable != tc.bookable {
			t.Errorf("slot %s bookable = %v, want %v", slot.StartLabel, slot.Bookable, tc.bookable)
		}
	}
}

func TestBackToBackBookingsAllowed(t *testing.T) {
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	engine := testEngine(nil)
	business, svc := testBusiness()
	userBusy := []models.BusyPeriod{{
		Start: time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC),
	}}

	slots := engine.GenerateDaySlots(business, svc, monday, userBusy)

	if slot := slotAt(t, slots, 540); !slot.Bookable {
		t.Error("a slot ending exactly at a busy start should stay bookable")
	}
	if slot := slotAt(t, slots, 555); slot.Reason != models.ReasonUserBusy {
		t.Errorf("partially overlapping slot reason = %q, want user_busy", slot.Reason)
	}
	if slot := slotAt(t, slots, 570); slot.Bookable {
		t.Error("slot inside the busy period should not be bookable")
	}
	if slot := slotAt(t, slots, 600); !slot.Bookable {
		t.Error("a slot starting exactly at a busy end should stay bookable")
	}
}

func TestBusyPeriodClippedToDay(t *testing.T) {
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	engine := testEngine(nil)
	business, svc := testBusiness()

	// Overnight busy period spilling into the morning.
	userBusy := []models.BusyPeriod{{
		Start: time.Date(2026, 2, 22, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC),
	}}

	slots := engine.GenerateDaySlots(business, svc, monday, userBusy)
	if slot := slotAt(t, slots, 540); slot.Reason != models.ReasonUserBusy {
		t.Errorf("morning slot reason = %q, want user_busy", slot.Reason)
	}
	if slot := slotAt(t, slots, 600); !slot.Bookable {
		t.Error("slot after the clipped busy period should be bookable")
	}
}
