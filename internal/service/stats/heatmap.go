package stats

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// minLabelRegion is the smallest blank region that can carry a month label.
const minLabelRegion = 2

// BuildWeekGrid lays out a 7-day heatmap row. singleRep switches from the
// team active/total ratio scale to the rep's relative visit-count scale.
func BuildWeekGrid(days []stats.DailyActivity, today dates.Date, singleRep bool) stats.Grid {
	maxVisits := maxVisitCount(days, today)

	cells := make([]stats.GridCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, buildCell(day, today, singleRep, maxVisits))
	}

	return stats.Grid{Cells: cells}
}

// BuildMonthGrid lays out a full calendar month with leading and trailing
// placeholder cells padding the first and last week (weeks start Sunday).
// The month name goes in the larger blank region; a tie or a region
// smaller than two cells leaves the grid unlabeled. days must cover the
// month from the 1st to the last day in order.
func BuildMonthGrid(days []stats.DailyActivity, today dates.Date, singleRep bool) stats.Grid {
	if len(days) == 0 {
		return stats.Grid{}
	}

	first := days[0].Date
	last := days[len(days)-1].Date
	leading := int(first.Weekday())
	trailing := 6 - int(last.Weekday())

	maxVisits := maxVisitCount(days, today)

	cells := make([]stats.GridCell, 0, leading+len(days)+trailing)
	for i := 0; i < leading; i++ {
		cells = append(cells, stats.GridCell{Placeholder: true})
	}
	for _, day := range days {
		cells = append(cells, buildCell(day, today, singleRep, maxVisits))
	}
	for i := 0; i < trailing; i++ {
		cells = append(cells, stats.GridCell{Placeholder: true})
	}

	grid := stats.Grid{
		Cells:          cells,
		LeadingBlanks:  leading,
		TrailingBlanks: trailing,
	}

	switch {
	case leading > trailing && leading >= minLabelRegion:
		grid.MonthLabel = first.MonthName()
		grid.LabelAtStart = true
	case trailing > leading && trailing >= minLabelRegion:
		grid.MonthLabel = first.MonthName()
	}

	return grid
}

func buildCell(day stats.DailyActivity, today dates.Date, singleRep bool, maxVisits int) stats.GridCell {
	isFuture := day.Date.After(today)

	cell := stats.GridCell{
		Date:      day.Date,
		IsToday:   day.Date.Equal(today),
		IsFuture:  isFuture,
		IsInRange: day.IsInRange,
	}

	if isFuture {
		cell.Bucket = stats.BucketFuture
		return cell
	}

	if singleRep {
		cell.Bucket = bucketForRatio(day.VisitCount, maxVisits)
	} else {
		cell.Bucket = bucketForRatio(day.ActiveCount, day.TotalCount)
	}
	return cell
}

// bucketForRatio maps count/denominator onto the five color levels. A zero
// count or denominator is always the empty bucket.
func bucketForRatio(count, denominator int) stats.Bucket {
	if count <= 0 || denominator <= 0 {
		return stats.BucketEmpty
	}

	ratio := float64(count) / float64(denominator)
	switch {
	case ratio <= 0.25:
		return stats.BucketLow
	case ratio <= 0.50:
		return stats.BucketMedium
	case ratio <= 0.75:
		return stats.BucketHigh
	default:
		return stats.BucketMax
	}
}

// maxVisitCount is the reference for the single-rep relative scale: the
// busiest non-future in-range day of the visible window.
func maxVisitCount(days []stats.DailyActivity, today dates.Date) int {
	max := 0
	for _, day := range days {
		if day.Date.After(today) || !day.IsInRange {
			continue
		}
		if day.VisitCount > max {
			max = day.VisitCount
		}
	}
	return max
}
