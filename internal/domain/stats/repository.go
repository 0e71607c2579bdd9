package stats

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// StatsRepository serves the aggregate queries the activity collections
// alone cannot answer cheaply.
type StatsRepository interface {
	// TeamDailyActivity returns, per day of rng, how many of the manager's
	// reps had at least one visit, sheet sale or expense, plus team size.
	TeamDailyActivity(ctx context.Context, managerID string, rng dates.Range) ([]DailyActivity, error)

	// RepDailyVisitCounts returns per-day visit counts for one rep.
	RepDailyVisitCounts(ctx context.Context, userID string, rng dates.Range) ([]DailyActivity, error)

	// TeamRollup returns one row per rep under managerID with window totals.
	TeamRollup(ctx context.Context, managerID string, rng dates.Range) ([]RepRollup, error)
}
