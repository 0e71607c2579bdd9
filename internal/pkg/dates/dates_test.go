package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	_, err = Parse("2023-02-29")
	assert.Error(t, err)

	_, err = Parse("29/02/2024")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	d, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, MustParse("2024-06-01"), d)

	_, err = ParseMonth("2024-6")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	t.Parallel()

	d := MustParse("2024-02-28")
	assert.Equal(t, MustParse("2024-02-29"), d.AddDays(1))
	assert.Equal(t, MustParse("2024-03-01"), d.AddDays(2))
	assert.Equal(t, MustParse("2024-02-27"), d.AddDays(-1))

	assert.Equal(t, MustParse("2024-03-28"), d.AddMonths(1))
	assert.Equal(t, 29, d.DaysInMonth())
	assert.Equal(t, 28, MustParse("2023-02-10").DaysInMonth())
	assert.Equal(t, MustParse("2024-02-01"), d.FirstOfMonth())
	assert.Equal(t, MustParse("2024-02-29"), d.LastOfMonth())
}

func TestDate_Comparisons(t *testing.T) {
	t.Parallel()

	a := MustParse("2024-06-01")
	b := MustParse("2024-06-02")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(MustParse("2024-06-01")))
	assert.Equal(t, 1, a.DaysUntil(b))
	assert.Equal(t, -1, b.DaysUntil(a))
}

func TestDate_MonthKeyAndWeekday(t *testing.T) {
	t.Parallel()

	d := MustParse("2024-06-02")
	assert.Equal(t, "2024-06", d.MonthKey())
	assert.Equal(t, time.Sunday, d.Weekday())
	assert.Equal(t, "June", d.MonthName())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(MustParse("2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-02"`, string(out))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-02"`), &d))
	assert.Equal(t, MustParse("2024-06-02"), d)

	assert.Error(t, json.Unmarshal([]byte(`20240602`), &d))
}

func TestResolveRange_Today(t *testing.T) {
	t.Parallel()

	today := MustParse("2024-06-15")
	got, err := ResolveRange(RangeToday, today, Range{})
	require.NoError(t, err)
	assert.Equal(t, Range{Start: today, End: today}, got)
	assert.Equal(t, 1, got.NumDays())
}

func TestResolveRange_Week_IsTrailingSevenDays(t *testing.T) {
	t.Parallel()

	got, err := ResolveRange(RangeWeek, MustParse("2024-06-15"), Range{})
	require.NoError(t, err)
	assert.Equal(t, MustParse("2024-06-09"), got.Start)
	assert.Equal(t, MustParse("2024-06-15"), got.End)
	assert.Equal(t, 7, got.NumDays())
}

func TestResolveRange_Week_CrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	got, err := ResolveRange(RangeWeek, MustParse("2024-07-03"), Range{})
	require.NoError(t, err)
	assert.Equal(t, MustParse("2024-06-27"), got.Start)
}

func TestResolveRange_Month_IsPartialWindow(t *testing.T) {
	t.Parallel()

	// Month resolves up to today, not to the month's end.
	got, err := ResolveRange(RangeMonth, MustParse("2024-06-15"), Range{})
	require.NoError(t, err)
	assert.Equal(t, MustParse("2024-06-01"), got.Start)
	assert.Equal(t, MustParse("2024-06-15"), got.End)
}

func TestResolveRange_Custom_SwapsReversedDates(t *testing.T) {
	t.Parallel()

	got, err := ResolveRange(RangeCustom, MustParse("2024-06-15"), Range{
		Start: MustParse("2024-06-10"),
		End:   MustParse("2024-06-03"),
	})
	require.NoError(t, err)
	assert.Equal(t, MustParse("2024-06-03"), got.Start)
	assert.Equal(t, MustParse("2024-06-10"), got.End)
}

func TestResolveRange_Custom_RequiresBothDates(t *testing.T) {
	t.Parallel()

	_, err := ResolveRange(RangeCustom, MustParse("2024-06-15"), Range{
		Start: MustParse("2024-06-10"),
	})
	assert.Error(t, err)
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()

	r := Range{Start: MustParse("2024-06-05"), End: MustParse("2024-06-10")}
	assert.True(t, r.Contains(MustParse("2024-06-05")))
	assert.True(t, r.Contains(MustParse("2024-06-10")))
	assert.False(t, r.Contains(MustParse("2024-06-04")))
	assert.False(t, r.Contains(MustParse("2024-06-11")))
}

func TestRange_Days(t *testing.T) {
	t.Parallel()

	r := Range{Start: MustParse("2024-06-29"), End: MustParse("2024-07-02")}
	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, MustParse("2024-06-29"), days[0])
	assert.Equal(t, MustParse("2024-07-02"), days[3])
}

func TestRange_ClipTo(t *testing.T) {
	t.Parallel()

	r := Range{Start: MustParse("2024-06-01"), End: MustParse("2024-06-30")}

	clipped := r.ClipTo(MustParse("2024-06-15"))
	assert.Equal(t, MustParse("2024-06-15"), clipped.End)
	assert.Equal(t, r.Start, clipped.Start)

	// Limit beyond the window leaves it untouched.
	assert.Equal(t, r, r.ClipTo(MustParse("2024-07-10")))

	// Fully future window clips empty.
	future := Range{Start: MustParse("2024-07-01"), End: MustParse("2024-07-10")}
	empty := future.ClipTo(MustParse("2024-06-15"))
	assert.True(t, empty.End.Before(empty.Start))
}

func TestParseRangeKind(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"today", "week", "month", "custom"} {
		kind, err := ParseRangeKind(valid)
		require.NoError(t, err)
		assert.Equal(t, RangeKind(valid), kind)
	}

	_, err := ParseRangeKind("quarter")
	assert.Error(t, err)
}
