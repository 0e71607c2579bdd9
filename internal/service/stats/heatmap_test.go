package stats

import (
	"testing"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthDays(month string, visitsByDay map[int]int) []stats.DailyActivity {
	first, err := dates.ParseMonth(month)
	if err != nil {
		panic(err)
	}

	days := make([]stats.DailyActivity, 0, first.DaysInMonth())
	for d := first; !d.After(first.LastOfMonth()); d = d.AddDays(1) {
		days = append(days, stats.DailyActivity{
			Date:       d,
			VisitCount: visitsByDay[d.Day()],
			IsInRange:  true,
		})
	}
	return days
}

func TestBucketForRatio_Thresholds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, stats.BucketEmpty, bucketForRatio(0, 4))
	assert.Equal(t, stats.BucketEmpty, bucketForRatio(3, 0))
	assert.Equal(t, stats.BucketLow, bucketForRatio(1, 4))
	assert.Equal(t, stats.BucketMedium, bucketForRatio(2, 4))
	assert.Equal(t, stats.BucketHigh, bucketForRatio(3, 4))
	assert.Equal(t, stats.BucketMax, bucketForRatio(4, 4))
	assert.Equal(t, stats.BucketMax, bucketForRatio(19, 20))
}

func TestBuildWeekGrid_FutureDaysAlwaysRenderFuture(t *testing.T) {
	t.Parallel()

	today := dates.MustParse("2024-06-05")
	days := []stats.DailyActivity{
		{Date: dates.MustParse("2024-06-04"), VisitCount: 3, IsInRange: true},
		{Date: dates.MustParse("2024-06-05"), VisitCount: 1, IsInRange: true},
		// A record logged against a future date must not light the cell.
		{Date: dates.MustParse("2024-06-06"), VisitCount: 5, IsInRange: true},
	}

	grid := BuildWeekGrid(days, today, true)
	require.Len(t, grid.Cells, 3)

	assert.Equal(t, stats.BucketMax, grid.Cells[0].Bucket)
	assert.True(t, grid.Cells[1].IsToday)
	assert.Equal(t, stats.BucketFuture, grid.Cells[2].Bucket)
	assert.True(t, grid.Cells[2].IsFuture)
}

func TestBuildWeekGrid_SingleRepRelativeScale(t *testing.T) {
	t.Parallel()

	// Busiest non-future day (8 visits) anchors the scale.
	today := dates.MustParse("2024-06-10")
	days := []stats.DailyActivity{
		{Date: dates.MustParse("2024-06-04"), VisitCount: 8, IsInRange: true},
		{Date: dates.MustParse("2024-06-05"), VisitCount: 2, IsInRange: true},
		{Date: dates.MustParse("2024-06-06"), VisitCount: 4, IsInRange: true},
		{Date: dates.MustParse("2024-06-07"), VisitCount: 0, IsInRange: true},
	}

	grid := BuildWeekGrid(days, today, true)
	require.Len(t, grid.Cells, 4)

	assert.Equal(t, stats.BucketMax, grid.Cells[0].Bucket)
	assert.Equal(t, stats.BucketLow, grid.Cells[1].Bucket)
	assert.Equal(t, stats.BucketMedium, grid.Cells[2].Bucket)
	assert.Equal(t, stats.BucketEmpty, grid.Cells[3].Bucket)
}

func TestBuildWeekGrid_TeamScaleUsesActiveOfTotal(t *testing.T) {
	t.Parallel()

	today := dates.MustParse("2024-06-10")
	days := []stats.DailyActivity{
		{Date: dates.MustParse("2024-06-04"), ActiveCount: 4, TotalCount: 4, IsInRange: true},
		{Date: dates.MustParse("2024-06-05"), ActiveCount: 1, TotalCount: 4, IsInRange: true},
		{Date: dates.MustParse("2024-06-06"), ActiveCount: 0, TotalCount: 4, IsInRange: true},
	}

	grid := BuildWeekGrid(days, today, false)
	require.Len(t, grid.Cells, 3)

	assert.Equal(t, stats.BucketMax, grid.Cells[0].Bucket)
	assert.Equal(t, stats.BucketLow, grid.Cells[1].Bucket)
	assert.Equal(t, stats.BucketEmpty, grid.Cells[2].Bucket)
}

func TestBuildMonthGrid_PadsToFullWeeks(t *testing.T) {
	t.Parallel()

	// June 2024 starts on a Saturday and ends on a Sunday.
	days := monthDays("2024-06", nil)
	grid := BuildMonthGrid(days, dates.MustParse("2024-06-30"), true)

	assert.Equal(t, 6, grid.LeadingBlanks)
	assert.Equal(t, 6, grid.TrailingBlanks)
	require.Len(t, grid.Cells, 6+30+6)
	assert.True(t, grid.Cells[0].Placeholder)
	assert.False(t, grid.Cells[6].Placeholder)
	assert.Equal(t, dates.MustParse("2024-06-01"), grid.Cells[6].Date)
	assert.True(t, grid.Cells[len(grid.Cells)-1].Placeholder)
}

func TestBuildMonthGrid_LabelGoesInLargerBlankRegion(t *testing.T) {
	t.Parallel()

	// February 2008: starts Friday, ends Friday. Five leading blanks
	// against one trailing, so the label leads.
	days := monthDays("2008-02", nil)
	grid := BuildMonthGrid(days, dates.MustParse("2008-02-29"), true)

	require.Equal(t, 5, grid.LeadingBlanks)
	require.Equal(t, 1, grid.TrailingBlanks)
	assert.Equal(t, "February", grid.MonthLabel)
	assert.True(t, grid.LabelAtStart)
}

func TestBuildMonthGrid_LabelTrailsWhenTrailingRegionLarger(t *testing.T) {
	t.Parallel()

	// June 2026: starts Monday (1 leading), ends Tuesday (4 trailing).
	days := monthDays("2026-06", nil)
	grid := BuildMonthGrid(days, dates.MustParse("2026-06-30"), true)

	require.Equal(t, 1, grid.LeadingBlanks)
	require.Equal(t, 4, grid.TrailingBlanks)
	assert.Equal(t, "June", grid.MonthLabel)
	assert.False(t, grid.LabelAtStart)
}

func TestBuildMonthGrid_TieLeavesGridUnlabeled(t *testing.T) {
	t.Parallel()

	// July 2025: two leading and two trailing blanks.
	days := monthDays("2025-07", nil)
	grid := BuildMonthGrid(days, dates.MustParse("2025-07-31"), true)

	require.Equal(t, grid.LeadingBlanks, grid.TrailingBlanks)
	assert.Empty(t, grid.MonthLabel)
}

func TestBuildMonthGrid_ExactWeeksMonthHasNoLabel(t *testing.T) {
	t.Parallel()

	// February 2015 fills exactly four weeks.
	days := monthDays("2015-02", nil)
	grid := BuildMonthGrid(days, dates.MustParse("2015-02-28"), true)

	assert.Equal(t, 0, grid.LeadingBlanks)
	assert.Equal(t, 0, grid.TrailingBlanks)
	assert.Empty(t, grid.MonthLabel)
	assert.Len(t, grid.Cells, 28)
}

func TestBuildMonthGrid_FutureScaleIgnoresFutureDays(t *testing.T) {
	t.Parallel()

	// Mid-month: the relative scale must come from past days only.
	days := monthDays("2024-06", map[int]int{3: 2, 10: 4, 20: 100})
	today := dates.MustParse("2024-06-15")

	grid := BuildMonthGrid(days, today, true)

	// Offset into cells: leading blanks then day-of-month.
	cellFor := func(day int) stats.GridCell {
		return grid.Cells[grid.LeadingBlanks+day-1]
	}

	assert.Equal(t, stats.BucketMedium, cellFor(3).Bucket)
	assert.Equal(t, stats.BucketMax, cellFor(10).Bucket)
	assert.Equal(t, stats.BucketFuture, cellFor(20).Bucket)
}

func TestBuildMonthGrid_Empty(t *testing.T) {
	t.Parallel()

	grid := BuildMonthGrid(nil, dates.MustParse("2024-06-15"), true)
	assert.Empty(t, grid.Cells)
	assert.Empty(t, grid.MonthLabel)
}
