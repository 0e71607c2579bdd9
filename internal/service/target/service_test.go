package target

import (
	"context"
	"testing"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTargetRepo struct {
	byKey map[string]target.Target
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{byKey: make(map[string]target.Target)}
}

func (f *fakeTargetRepo) key(userID, month string) string { return userID + "/" + month }

func (f *fakeTargetRepo) Upsert(_ context.Context, t target.Target) (target.Target, error) {
	f.byKey[f.key(t.UserID, t.Month)] = t
	return t, nil
}

func (f *fakeTargetRepo) GetByUserAndMonth(_ context.Context, userID, month string) (target.Target, error) {
	t, ok := f.byKey[f.key(userID, month)]
	if !ok {
		return target.Target{}, target.ErrTargetNotFound
	}
	return t, nil
}

func (f *fakeTargetRepo) ListAutoRenewByMonth(_ context.Context, month string) ([]target.Target, error) {
	var out []target.Target
	for _, t := range f.byKey {
		if t.Month == month && t.AutoRenew {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTargetRepo) HasTargetForMonth(_ context.Context, userID, month string) (bool, error) {
	_, ok := f.byKey[f.key(userID, month)]
	return ok, nil
}

type fakeStatsService struct {
	stats    stats.AggregatedStats
	lastRng  dates.Range
	lastKind dates.RangeKind
}

func (f *fakeStatsService) GetUserStats(_ context.Context, userID string, kind dates.RangeKind, custom dates.Range) (stats.UserStatsResponse, error) {
	f.lastKind = kind
	f.lastRng = custom
	return stats.UserStatsResponse{UserID: userID, Range: custom, Stats: f.stats}, nil
}

func (f *fakeStatsService) GetTeamStats(_ context.Context, _ string, _ dates.RangeKind, _ dates.Range) (stats.TeamStatsResponse, error) {
	return stats.TeamStatsResponse{}, nil
}

func (f *fakeStatsService) GetHeatmap(_ context.Context, _ string, _ stats.HeatmapRequest) (stats.HeatmapResponse, error) {
	return stats.HeatmapResponse{}, nil
}

type fakeNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotifier) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotifier) List(_ context.Context, _ string, _ int) ([]notification.NotificationResponse, int, error) {
	return nil, 0, nil
}

func (f *fakeNotifier) MarkRead(_ context.Context, _, _ string) error { return nil }

func TestUpsert_StoresAndNotifies(t *testing.T) {
	t.Parallel()

	repo := newFakeTargetRepo()
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeStatsService{}, notifier, testThresholds)

	resp, err := svc.Upsert(context.Background(), "mgr-1", target.UpsertTargetRequest{
		UserID:        "rep-1",
		Month:         "2024-06",
		ByAccountType: map[account.Type]int{account.TypeDealer: 20},
		AutoRenew:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06", resp.Month)
	assert.True(t, resp.AutoRenew)

	stored, err := repo.GetByUserAndMonth(context.Background(), "rep-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "mgr-1", stored.SetByID)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeTargetAssigned, notifier.queued[0].Type)
	assert.Equal(t, "rep-1", notifier.queued[0].RecipientID)
}

func TestUpsert_RejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeTargetRepo(), &fakeStatsService{}, &fakeNotifier{}, testThresholds)

	_, err := svc.Upsert(context.Background(), "mgr-1", target.UpsertTargetRequest{
		UserID: "rep-1",
		Month:  "June 2024",
	})
	assert.ErrorIs(t, err, target.ErrInvalidMonth)

	_, err = svc.Upsert(context.Background(), "mgr-1", target.UpsertTargetRequest{
		UserID:        "rep-1",
		Month:         "2024-06",
		ByAccountType: map[account.Type]int{account.TypeDealer: -5},
	})
	assert.ErrorIs(t, err, target.ErrNegativeTarget)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeTargetRepo(), &fakeStatsService{}, &fakeNotifier{}, testThresholds)
	_, err := svc.Get(context.Background(), "rep-1", "2024-06")
	assert.ErrorIs(t, err, target.ErrTargetNotFound)
}

func TestGetProgress_CoversWholeMonth(t *testing.T) {
	t.Parallel()

	repo := newFakeTargetRepo()
	statsSvc := &fakeStatsService{stats: statsWith(map[account.Type]int{account.TypeDealer: 15}, nil)}
	svc := NewService(repo, statsSvc, &fakeNotifier{}, testThresholds)

	_, err := svc.Upsert(context.Background(), "mgr-1", target.UpsertTargetRequest{
		UserID:        "rep-1",
		Month:         "2024-06",
		ByAccountType: map[account.Type]int{account.TypeDealer: 20},
	})
	require.NoError(t, err)

	report, err := svc.GetProgress(context.Background(), "rep-1", "2024-06")
	require.NoError(t, err)

	// Achievement is measured over the full calendar month.
	assert.Equal(t, dates.RangeCustom, statsSvc.lastKind)
	assert.Equal(t, dates.MustParse("2024-06-01"), statsSvc.lastRng.Start)
	assert.Equal(t, dates.MustParse("2024-06-30"), statsSvc.lastRng.End)

	p := findCategory(t, report.ByAccountType, "dealer")
	assert.Equal(t, 75, p.Percentage)
	assert.Equal(t, target.StateNormal, p.State)
}

func TestGetProgress_NoTargetIsNormal(t *testing.T) {
	t.Parallel()

	statsSvc := &fakeStatsService{stats: statsWith(map[account.Type]int{account.TypeDealer: 15}, nil)}
	svc := NewService(newFakeTargetRepo(), statsSvc, &fakeNotifier{}, testThresholds)

	report, err := svc.GetProgress(context.Background(), "rep-1", "2024-06")
	require.NoError(t, err)

	p := findCategory(t, report.ByAccountType, "dealer")
	assert.False(t, p.HasTarget)
	assert.Equal(t, 15, p.Achieved)
	assert.Equal(t, target.StateNormal, p.State)
}
