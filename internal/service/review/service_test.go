package review

import (
	"context"
	"testing"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	items  []review.PendingItem
	counts review.PendingCounts

	listCalls  int
	approveErr error
	rejectErr  error
	decisions  []review.Decision
}

func (f *fakeReviewRepo) ListPending(_ context.Context, _ string) ([]review.PendingItem, review.PendingCounts, error) {
	f.listCalls++
	items := make([]review.PendingItem, len(f.items))
	copy(items, f.items)
	return items, f.counts, nil
}

func (f *fakeReviewRepo) Approve(_ context.Context, d review.Decision) error {
	f.decisions = append(f.decisions, d)
	return f.approveErr
}

func (f *fakeReviewRepo) Reject(_ context.Context, d review.Decision) error {
	f.decisions = append(f.decisions, d)
	return f.rejectErr
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

func pendingItem(id string, itemType review.ItemType) review.PendingItem {
	return review.PendingItem{
		ID:     id,
		Type:   itemType,
		UserID: "rep-1",
		Date:   dates.MustParse("2024-06-10"),
	}
}

func newTestService(repo *fakeReviewRepo, notifier *fakeNotifier) *Service {
	svc := NewService(repo, notifier)
	base := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc
}

func TestGetPending_ServesSnapshotWhileFresh(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{
		items: []review.PendingItem{
			pendingItem("s1", review.ItemSheets),
			pendingItem("e1", review.ItemExpense),
		},
		counts: review.PendingCounts{Sheets: 1, Expenses: 1, Total: 2},
	}
	svc := newTestService(repo, &fakeNotifier{})

	first, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Len(t, first.Items, 2)
	assert.Equal(t, 1, repo.listCalls)

	second, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestGetPending_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)

	base := svc.now()
	svc.now = func() time.Time { return base.Add(snapshotTTL + time.Second) }

	_, err = svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestApprove_RemovesItemFromSnapshotAndRecordsDecision(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{
		items: []review.PendingItem{
			pendingItem("s1", review.ItemSheets),
			pendingItem("e1", review.ItemExpense),
		},
		counts: review.PendingCounts{Sheets: 1, Expenses: 1, Total: 2},
	}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), "mgr-1", "s1", review.ItemSheets))

	require.Len(t, repo.decisions, 1)
	assert.Equal(t, "s1", repo.decisions[0].ItemID)
	assert.Equal(t, "mgr-1", repo.decisions[0].ReviewerID)

	// The snapshot dropped the item without hitting the store again.
	resp, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "e1", resp.Items[0].ID)
	assert.Equal(t, review.PendingCounts{Sheets: 0, Expenses: 1, Total: 1}, resp.Counts)
	assert.Equal(t, 1, repo.listCalls)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeItemApproved, notifier.queued[0].Type)
	assert.Equal(t, "rep-1", notifier.queued[0].RecipientID)
}

func TestApprove_FailureDiscardsSnapshotAndRefetches(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{
		items:  []review.PendingItem{pendingItem("s1", review.ItemSheets)},
		counts: review.PendingCounts{Sheets: 1, Total: 1},
	}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)

	repo.approveErr = review.ErrAlreadyProcessed
	err = svc.Approve(context.Background(), "mgr-1", "s1", review.ItemSheets)
	assert.ErrorIs(t, err, review.ErrAlreadyProcessed)
	assert.Empty(t, notifier.queued)

	// The optimistic removal is reconciled by a refetch, not reversed
	// in place.
	repo.items = nil
	repo.counts = review.PendingCounts{}
	resp, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 2, repo.listCalls)
}

func TestReject_PassesCommentAndNotifies(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{
		items:  []review.PendingItem{pendingItem("e1", review.ItemExpense)},
		counts: review.PendingCounts{Expenses: 1, Total: 1},
	}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)

	comment := "Missing receipt"
	require.NoError(t, svc.Reject(context.Background(), "mgr-1", "e1", review.ItemExpense, &comment))

	require.Len(t, repo.decisions, 1)
	require.NotNil(t, repo.decisions[0].Comment)
	assert.Equal(t, comment, *repo.decisions[0].Comment)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeItemRejected, notifier.queued[0].Type)
	assert.Equal(t, comment, notifier.queued[0].Data["comment"])
}

func TestDecide_UnknownItemType(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeReviewRepo{}, &fakeNotifier{})
	err := svc.Approve(context.Background(), "mgr-1", "x", review.ItemType("visit"))
	assert.ErrorIs(t, err, review.ErrUnknownItemType)
}

func TestDecide_ColdSnapshotStillWritesDecision(t *testing.T) {
	t.Parallel()

	repo := &fakeReviewRepo{}
	svc := newTestService(repo, &fakeNotifier{})

	// No GetPending first: the decision must still reach the store.
	err := svc.Approve(context.Background(), "mgr-1", "s1", review.ItemSheets)
	require.NoError(t, err)
	require.Len(t, repo.decisions, 1)
}

func TestConcurrentDecisions_DoNotCorruptCounts(t *testing.T) {
	t.Parallel()

	items := make([]review.PendingItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, pendingItem(string(rune('a'+i)), review.ItemSheets))
	}
	repo := &fakeReviewRepo{items: items, counts: review.PendingCounts{Sheets: 20, Total: 20}}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(id string) {
			defer func() { done <- struct{}{} }()
			_ = svc.Approve(context.Background(), "mgr-1", id, review.ItemSheets)
		}(string(rune('a' + i)))
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	resp, err := svc.GetPending(context.Background(), "mgr-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, review.PendingCounts{}, resp.Counts)
}
