// Package period computes calendar-aligned date ranges for mileage reports.
// All arithmetic is in UTC: callers in other zones convert explicitly.
package period

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for manual range arguments.
const DateLayout = "2006-01-02"

// Range is an inclusive start/end pair at date granularity.
type Range struct {
	Start time.Time
	End   time.Time
}

// Window converts the range to an epoch-second window for storage queries:
// 00:00:00 on the start date through 23:59:59 on the end date, UTC.
func (r Range) Window() (int64, int64) {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 0, time.UTC)
	return start.Unix(), end.Unix()
}

// String renders the range as "YYYY-MM-DD – YYYY-MM-DD".
func (r Range) String() string {
	return r.Start.Format(DateLayout) + " – " + r.End.Format(DateLayout)
}

// weekStart returns the Monday of the week containing d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return truncate(d).AddDate(0, 0, -offset)
}

func truncate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// LastWeek is the Monday through Sunday immediately before the week
// containing today.
func LastWeek(today time.Time) Range {
	monday := weekStart(today)
	return Range{Start: monday.AddDate(0, 0, -7), End: monday.AddDate(0, 0, -1)}
}

// ThisWeek is this week's Monday through today.
func ThisWeek(today time.Time) Range {
	return Range{Start: weekStart(today), End: truncate(today)}
}

// LastMonth is the 1st through the last day of the previous calendar month.
func LastMonth(today time.Time) Range {
	firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: firstOfThis.AddDate(0, -1, 0), End: firstOfThis.AddDate(0, 0, -1)}
}

// ThisMonth is the 1st of the current month through today.
func ThisMonth(today time.Time) Range {
	return Range{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   truncate(today),
	}
}

// Manual builds a caller-supplied range from YYYY-MM-DD strings. An
// unparseable date or an end before the start is rejected.
func Manual(start, end string) (Range, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("bad start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("bad end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Range{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return Range{Start: s, End: e}, nil
}
