package target

import (
	"math"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
)

// Thresholds are the achievement-state percentage cutoffs. They come from
// configuration, not from display code.
type Thresholds struct {
	Near     int
	Complete int
}

// CalculateProgress combines a month's achieved stats with the stored
// target (nil when none is set). Pure; never errors. Percentages are never
// clamped: over-achievement reads over 100.
func CalculateProgress(month string, s stats.AggregatedStats, t *target.Target, th Thresholds) target.ProgressReport {
	report := target.ProgressReport{Month: month}

	var totalAchieved, totalTarget int

	for _, at := range account.KnownTypes() {
		var goal int
		var hasTarget bool
		if t != nil {
			goal, hasTarget = t.ByAccountType[at]
		}
		p := categoryProgress(string(at), s.Visits.ByType[at], goal, hasTarget, th)
		report.ByAccountType = append(report.ByAccountType, p)
		if p.HasTarget && p.Target > 0 {
			totalAchieved += p.Achieved
			totalTarget += p.Target
		}
	}

	for _, c := range sheetsale.KnownCatalogs() {
		var goal int
		var hasTarget bool
		if t != nil {
			goal, hasTarget = t.ByCatalog[c]
		}
		p := categoryProgress(string(c), s.Sheets.ByCatalog[c], goal, hasTarget, th)
		report.ByCatalog = append(report.ByCatalog, p)
		if p.HasTarget && p.Target > 0 {
			totalAchieved += p.Achieved
			totalTarget += p.Target
		}
	}

	report.Total = categoryProgress("total", totalAchieved, totalTarget, totalTarget > 0, th)
	return report
}

func categoryProgress(category string, achieved, goal int, hasTarget bool, th Thresholds) target.Progress {
	pct := percentage(achieved, goal)
	return target.Progress{
		Category:   category,
		Achieved:   achieved,
		Target:     goal,
		HasTarget:  hasTarget,
		Percentage: pct,
		State:      classify(achieved, goal, pct, hasTarget, th),
	}
}

// percentage is round(achieved/target*100) with a zero-denominator guard:
// no target, or nothing achieved, reads 0 rather than NaN.
func percentage(achieved, goal int) int {
	if goal <= 0 || achieved <= 0 {
		return 0
	}
	return int(math.Round(float64(achieved) / float64(goal) * 100))
}

func classify(achieved, goal, pct int, hasTarget bool, th Thresholds) target.AchievementState {
	if !hasTarget || goal <= 0 {
		return target.StateNormal
	}
	switch {
	case achieved >= goal:
		return target.StateComplete
	case pct >= th.Near && pct < th.Complete:
		return target.StateNearTarget
	default:
		return target.StateNormal
	}
}
