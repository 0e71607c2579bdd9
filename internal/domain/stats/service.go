package stats

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// HeatmapView selects the calendar layout of the heatmap grid.
type HeatmapView string

const (
	HeatmapWeek  HeatmapView = "week"
	HeatmapMonth HeatmapView = "month"
)

type HeatmapRequest struct {
	View HeatmapView
	// UserID switches to the single-rep relative color scale; empty means
	// team view for the calling manager.
	UserID string
	Month  string // YYYY-MM, month view only; defaults to current month
	// StartDate/EndDate (YYYY-MM-DD) select a sub-month window. The grid
	// still renders the whole month containing StartDate; days outside the
	// window stay present with IsInRange false.
	StartDate string
	EndDate   string
}

type StatsService interface {
	// GetUserStats aggregates one user's activity over the resolved range.
	GetUserStats(ctx context.Context, userID string, kind dates.RangeKind, custom dates.Range) (UserStatsResponse, error)

	// GetTeamStats rolls up the manager's whole team over the range.
	GetTeamStats(ctx context.Context, managerID string, kind dates.RangeKind, custom dates.Range) (TeamStatsResponse, error)

	// GetHeatmap builds the calendar activity grid.
	GetHeatmap(ctx context.Context, managerID string, req HeatmapRequest) (HeatmapResponse, error)
}
