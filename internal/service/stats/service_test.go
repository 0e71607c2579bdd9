package stats

import (
	"context"
	"testing"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	lastRng dates.Range
	visits  map[string]int // keyed by YYYY-MM-DD
}

func (f *fakeStatsRepo) TeamDailyActivity(ctx context.Context, managerID string, rng dates.Range) ([]stats.DailyActivity, error) {
	f.lastRng = rng
	return f.days(rng), nil
}

func (f *fakeStatsRepo) RepDailyVisitCounts(ctx context.Context, userID string, rng dates.Range) ([]stats.DailyActivity, error) {
	f.lastRng = rng
	return f.days(rng), nil
}

func (f *fakeStatsRepo) TeamRollup(ctx context.Context, managerID string, rng dates.Range) ([]stats.RepRollup, error) {
	return nil, nil
}

func (f *fakeStatsRepo) days(rng dates.Range) []stats.DailyActivity {
	out := make([]stats.DailyActivity, 0, rng.NumDays())
	for _, d := range rng.Days() {
		out = append(out, stats.DailyActivity{Date: d, VisitCount: f.visits[d.String()], IsInRange: true})
	}
	return out
}

func heatmapService(repo *fakeStatsRepo, today dates.Date) *Service {
	return &Service{
		statsRepo: repo,
		today:     func() dates.Date { return today },
	}
}

// cellFor finds the grid cell carrying the given date.
func cellFor(t *testing.T, grid stats.Grid, d dates.Date) stats.GridCell {
	t.Helper()
	for _, c := range grid.Cells {
		if !c.Placeholder && c.Date.Equal(d) {
			return c
		}
	}
	t.Fatalf("no cell for %s", d)
	return stats.GridCell{}
}

func TestGetHeatmap_CustomWindowRendersWholeMonth(t *testing.T) {
	t.Parallel()

	repo := &fakeStatsRepo{visits: map[string]int{
		"2025-07-05": 9, // outside the requested window
		"2025-07-12": 1,
		"2025-07-15": 3,
	}}
	svc := heatmapService(repo, dates.MustParse("2025-07-31"))

	resp, err := svc.GetHeatmap(context.Background(), "mgr-1", stats.HeatmapRequest{
		UserID:    "rep-1",
		StartDate: "2025-07-10",
		EndDate:   "2025-07-20",
	})
	require.NoError(t, err)

	// The fetch covers the whole enclosing month, not just the window.
	assert.Equal(t, dates.MustParse("2025-07-01"), repo.lastRng.Start)
	assert.Equal(t, dates.MustParse("2025-07-31"), repo.lastRng.End)
	assert.Equal(t, stats.HeatmapMonth, resp.View)

	// July 2025: Tuesday start, Thursday end.
	require.Len(t, resp.Grid.Cells, 2+31+2)

	outside := cellFor(t, resp.Grid, dates.MustParse("2025-07-05"))
	assert.False(t, outside.IsInRange)

	inside := cellFor(t, resp.Grid, dates.MustParse("2025-07-15"))
	assert.True(t, inside.IsInRange)
	// The relative scale anchors on in-window days only: 3 visits is the
	// window max even though an out-of-window day logged 9.
	assert.Equal(t, stats.BucketMax, inside.Bucket)
}

func TestGetHeatmap_CustomWindowSwapsReversedEndpoints(t *testing.T) {
	t.Parallel()

	repo := &fakeStatsRepo{visits: map[string]int{}}
	svc := heatmapService(repo, dates.MustParse("2025-07-31"))

	resp, err := svc.GetHeatmap(context.Background(), "mgr-1", stats.HeatmapRequest{
		UserID:    "rep-1",
		StartDate: "2025-07-20",
		EndDate:   "2025-07-10",
	})
	require.NoError(t, err)

	assert.Equal(t, dates.MustParse("2025-07-01"), repo.lastRng.Start)
	assert.True(t, cellFor(t, resp.Grid, dates.MustParse("2025-07-15")).IsInRange)
	assert.False(t, cellFor(t, resp.Grid, dates.MustParse("2025-07-05")).IsInRange)
	assert.False(t, cellFor(t, resp.Grid, dates.MustParse("2025-07-25")).IsInRange)
}

func TestGetHeatmap_CustomWindowRequiresBothDates(t *testing.T) {
	t.Parallel()

	svc := heatmapService(&fakeStatsRepo{}, dates.MustParse("2025-07-31"))

	_, err := svc.GetHeatmap(context.Background(), "mgr-1", stats.HeatmapRequest{
		UserID:    "rep-1",
		StartDate: "2025-07-10",
	})
	assert.Error(t, err)
}
