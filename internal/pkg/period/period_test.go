package period_test

import (
	"testing"
	"time"

	"github.com/okruta/routelog/internal/pkg/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLastWeek_MondayThroughSunday(t *testing.T) {
	// 2025-08-20 is a Wednesday.
	r := period.LastWeek(date(2025, time.August, 20))

	if !r.Start.Equal(date(2025, time.August, 11)) {
		t.Errorf("expected start 2025-08-11, got %s", r.Start)
	}
	if !r.End.Equal(date(2025, time.August, 17)) {
		t.Errorf("expected end 2025-08-17, got %s", r.End)
	}
	if r.Start.Weekday() != time.Monday {
		t.Errorf("last week must start on Monday, got %s", r.Start.Weekday())
	}
	if r.End.Weekday() != time.Sunday {
		t.Errorf("last week must end on Sunday, got %s", r.End.Weekday())
	}
}

func TestLastWeek_TodayIsMonday(t *testing.T) {
	// 2025-08-18 is a Monday: last week is the 11th through the 17th.
	r := period.LastWeek(date(2025, time.August, 18))

	if !r.Start.Equal(date(2025, time.August, 11)) || !r.End.Equal(date(2025, time.August, 17)) {
		t.Errorf("unexpected range %s", r)
	}
}

func TestLastWeek_TodayIsSunday(t *testing.T) {
	// 2025-08-24 is a Sunday, still part of the current Monday-based week.
	r := period.LastWeek(date(2025, time.August, 24))

	if !r.Start.Equal(date(2025, time.August, 11)) || !r.End.Equal(date(2025, time.August, 17)) {
		t.Errorf("unexpected range %s", r)
	}
}

func TestThisWeek_MondayThroughToday(t *testing.T) {
	today := date(2025, time.August, 20)
	r := period.ThisWeek(today)

	if r.Start.Weekday() != time.Monday {
		t.Errorf("this week must start on Monday, got %s", r.Start.Weekday())
	}
	if !r.Start.Equal(date(2025, time.August, 18)) {
		t.Errorf("expected start 2025-08-18, got %s", r.Start)
	}
	if !r.End.Equal(today) {
		t.Errorf("expected end today, got %s", r.End)
	}
}

func TestLastMonth_FullCalendarMonth(t *testing.T) {
	r := period.LastMonth(date(2025, time.March, 15))

	if !r.Start.Equal(date(2025, time.February, 1)) {
		t.Errorf("expected start 2025-02-01, got %s", r.Start)
	}
	if !r.End.Equal(date(2025, time.February, 28)) {
		t.Errorf("expected end 2025-02-28, got %s", r.End)
	}
}

func TestLastMonth_AcrossYearBoundary(t *testing.T) {
	r := period.LastMonth(date(2025, time.January, 10))

	if !r.Start.Equal(date(2024, time.December, 1)) || !r.End.Equal(date(2024, time.December, 31)) {
		t.Errorf("unexpected range %s", r)
	}
}

func TestThisMonth_FirstThroughToday(t *testing.T) {
	today := date(2025, time.August, 20)
	r := period.ThisMonth(today)

	if r.Start.Day() != 1 {
		t.Errorf("this month must start on day 1, got %d", r.Start.Day())
	}
	if !r.End.Equal(today) {
		t.Errorf("expected end today, got %s", r.End)
	}
}

func TestManual_Valid(t *testing.T) {
	r, err := period.Manual("2025-08-01", "2025-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2025, time.August, 1)) || !r.End.Equal(date(2025, time.August, 31)) {
		t.Errorf("unexpected range %s", r)
	}
}

func TestManual_SingleDay(t *testing.T) {
	if _, err := period.Manual("2025-08-01", "2025-08-01"); err != nil {
		t.Fatalf("single-day range should be valid: %v", err)
	}
}

func TestManual_InvertedRejected(t *testing.T) {
	if _, err := period.Manual("2025-08-31", "2025-08-01"); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestManual_BadFormatRejected(t *testing.T) {
	if _, err := period.Manual("31.08.2025", "2025-08-31"); err == nil {
		t.Fatal("expected error for bad date format")
	}
}

func TestWindow_InclusiveDayBounds(t *testing.T) {
	r, err := period.Manual("2025-08-01", "2025-08-02")
	if err != nil {
		t.Fatal(err)
	}

	from, to := r.Window()
	wantFrom := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC).Unix()
	wantTo := time.Date(2025, time.August, 2, 23, 59, 59, 0, time.UTC).Unix()
	if from != wantFrom {
		t.Errorf("expected window start %d, got %d", wantFrom, from)
	}
	if to != wantTo {
		t.Errorf("expected window end %d, got %d", wantTo, to)
	}
}
