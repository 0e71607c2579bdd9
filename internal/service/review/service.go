package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
)

// snapshotTTL bounds how long a warm pending snapshot is served without a
// refetch. Decisions by other managers on shared reps stay invisible at
// most this long.
const snapshotTTL = 30 * time.Second

type Service struct {
	repo     review.ReviewRepository
	notifier notification.Service

	now func() time.Time

	mu   sync.Mutex
	sets map[string]*pendingSet
}

func NewService(repo review.ReviewRepository, notifier notification.Service) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		sets:     make(map[string]*pendingSet),
	}
}

func (s *Service) set(managerID string) *pendingSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sets[managerID]
	if !ok {
		ps = &pendingSet{}
		s.sets[managerID] = ps
	}
	return ps
}

func (s *Service) GetPending(ctx context.Context, managerID string) (review.PendingItemsResponse, error) {
	ps := s.set(managerID)

	if !ps.isStale(s.now(), snapshotTTL) {
		if resp, ok := ps.get(); ok {
			return resp, nil
		}
	}

	return s.refetch(ctx, managerID, ps)
}

func (s *Service) refetch(ctx context.Context, managerID string, ps *pendingSet) (review.PendingItemsResponse, error) {
	items, counts, err := s.repo.ListPending(ctx, managerID)
	if err != nil {
		return review.PendingItemsResponse{}, fmt.Errorf("failed to list pending items: %w", err)
	}

	ps.replace(items, counts, s.now())
	resp, _ := ps.get()
	return resp, nil
}

func (s *Service) Approve(ctx context.Context, managerID, itemID string, itemType review.ItemType) error {
	return s.decide(ctx, managerID, itemID, itemType, nil, true)
}

func (s *Service) Reject(ctx context.Context, managerID, itemID string, itemType review.ItemType, comment *string) error {
	return s.decide(ctx, managerID, itemID, itemType, comment, false)
}

// decide applies one review decision. The snapshot drops the item before
// the store write; if the write fails for any reason the snapshot is
// invalidated so the next read refetches. No inverse patch: a removed item
// only reappears through a fresh ListPending.
func (s *Service) decide(ctx context.Context, managerID, itemID string, itemType review.ItemType, comment *string, approve bool) error {
	if itemType != review.ItemSheets && itemType != review.ItemExpense {
		return review.ErrUnknownItemType
	}

	ps := s.set(managerID)
	item, known := ps.lookup(itemID, itemType)
	ps.remove(itemID, itemType)

	d := review.Decision{
		ItemID:     itemID,
		Type:       itemType,
		ReviewerID: managerID,
		Comment:    comment,
	}

	var err error
	if approve {
		err = s.repo.Approve(ctx, d)
	} else {
		err = s.repo.Reject(ctx, d)
	}
	if err != nil {
		ps.invalidate()
		return err
	}

	if known {
		s.notifyOwner(ctx, managerID, item, comment, approve)
	}
	return nil
}

func (s *Service) notifyOwner(ctx context.Context, managerID string, item review.PendingItem, comment *string, approved bool) {
	req := notification.CreateNotificationRequest{
		RecipientID: item.UserID,
		SenderID:    &managerID,
		Type:        notification.TypeItemApproved,
		Title:       "Submission approved",
		Message:     fmt.Sprintf("Your %s submission for %s was approved", item.Type, item.Date),
		Data: map[string]interface{}{
			"item_id":   item.ID,
			"item_type": string(item.Type),
		},
	}
	if !approved {
		req.Type = notification.TypeItemRejected
		req.Title = "Submission rejected"
		req.Message = fmt.Sprintf("Your %s submission for %s was rejected", item.Type, item.Date)
		if comment != nil {
			req.Data["comment"] = *comment
		}
	}

	// Best effort; the notifier logs its own failures.
	_ = s.notifier.QueueNotification(ctx, req)
}
