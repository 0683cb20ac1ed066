package analytics

import (
	"fmt"
	"time"
)

// ParsePeriod validates a period name; empty means month
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(raw), nil
	default:
		return "", fmt.Errorf("invalid period %q (use week, month or year)", raw)
	}
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetDateRange returns the [start, now) window for a period. now carries the reporting timezone.
func GetDateRange(period Period, now time.Time) *DateRange {
	var start time.Time

	switch period {
	case PeriodWeek:
		start = StartOfDay(now).AddDate(0, 0, -7)
	case PeriodYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	return &DateRange{
		Start: start,
		End:   now,
		Field: "created_at",
	}
}

// GetDayRange covers today only, [midnight, now)
func GetDayRange(now time.Time) *DateRange {
	return &DateRange{
		Start: StartOfDay(now),
		End:   now,
		Field: "created_at",
	}
}

// GetTrailingDays covers whole calendar days: the last n days ending with today.
func GetTrailingDays(n int, now time.Time) *DateRange {
	today := StartOfDay(now)
	return &DateRange{
		Start: today.AddDate(0, 0, -(n - 1)),
		End:   today.AddDate(0, 0, 1),
		Field: "created_at",
	}
}

// UTC returns a copy with both bounds converted to UTC, matching how timestamps are stored
func (r *DateRange) UTC() *DateRange {
	return &DateRange{Start: r.Start.UTC(), End: r.End.UTC(), Field: r.Field}
}

// WithField returns a copy filtering on a qualified column
func (r *DateRange) WithField(field string) *DateRange {
	return &DateRange{Start: r.Start, End: r.End, Field: field}
}
