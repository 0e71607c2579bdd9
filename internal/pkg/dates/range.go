package dates

import "fmt"

// RangeKind selects how a stats window is resolved relative to today.
type RangeKind string

const (
	RangeToday  RangeKind = "today"
	RangeWeek   RangeKind = "week"
	RangeMonth  RangeKind = "month"
	RangeCustom RangeKind = "custom"
)

// ParseRangeKind validates a query-string range selector.
func ParseRangeKind(s string) (RangeKind, error) {
	switch RangeKind(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeCustom:
		return RangeKind(s), nil
	default:
		return "", fmt.Errorf("invalid range kind %q", s)
	}
}

// Range is an inclusive [Start, End] window of calendar days.
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// ResolveRange turns a range selector into a concrete window anchored on
// today:
//
//	today  [today, today]
//	week   the trailing 7 days, [today-6, today]
//	month  [first of month, today]
//	custom the given window, with reversed endpoints swapped
func ResolveRange(kind RangeKind, today Date, custom Range) (Range, error) {
	switch kind {
	case RangeToday:
		return Range{Start: today, End: today}, nil
	case RangeWeek:
		return Range{Start: today.AddDays(-6), End: today}, nil
	case RangeMonth:
		return Range{Start: today.FirstOfMonth(), End: today}, nil
	case RangeCustom:
		if custom.Start.IsZero() || custom.End.IsZero() {
			return Range{}, fmt.Errorf("custom range requires start and end dates")
		}
		return custom.Normalize(), nil
	default:
		return Range{}, fmt.Errorf("invalid range kind %q", kind)
	}
}

// Normalize swaps reversed endpoints so Start never follows End.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Contains reports whether d falls inside the window, endpoints included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// NumDays is the window length in days. A single-day window has length 1.
func (r Range) NumDays() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Days enumerates every date in the window in order.
func (r Range) Days() []Date {
	n := r.NumDays()
	if n <= 0 {
		return nil
	}
	days := make([]Date, 0, n)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// ClipTo bounds the window's end at limit. The result can be empty
// (End before Start) when the whole window lies after limit.
func (r Range) ClipTo(limit Date) Range {
	if r.End.After(limit) {
		return Range{Start: r.Start, End: limit}
	}
	return r
}
