package dates

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time or zone component. Activity records
// carry the rep's local calendar date, so comparing Dates never crosses
// timezone math.
type Date struct {
	year  int
	month time.Month
	day   int
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse for compile-time-constant inputs. Panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseMonth reads a "YYYY-MM" string and returns the first day of that
// month.
func ParseMonth(s string) (Date, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return FromTime(t), nil
}

// FromTime drops the time-of-day component in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today is the current date in loc.
func Today(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or 1 as d sorts before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.time().AddDate(0, 0, n))
}

// AddMonths returns the date n months later, normalized the way
// time.AddDate normalizes overflow days.
func (d Date) AddMonths(n int) Date {
	return FromTime(d.time().AddDate(0, n, 0))
}

func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

func (d Date) LastOfMonth() Date {
	return Date{year: d.year, month: d.month, day: d.DaysInMonth()}
}

func (d Date) DaysInMonth() int {
	return time.Date(d.year, d.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday with Sunday as 0, matching the heatmap's week layout.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// DaysUntil counts the days from d to other; negative when other is
// earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

// MonthKey is the "YYYY-MM" form targets are stored under.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.year, int(d.month))
}

func (d Date) MonthName() string {
	return d.month.String()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
