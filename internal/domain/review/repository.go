package review

import "context"

type ReviewRepository interface {
	// ListPending returns all items awaiting review for reps managed by
	// managerID, newest submission first, with per-type counts.
	ListPending(ctx context.Context, managerID string) ([]PendingItem, PendingCounts, error)

	// Approve marks a pending item approved. Returns ErrAlreadyProcessed if
	// the item is no longer pending, ErrItemNotFound if it never existed.
	Approve(ctx context.Context, d Decision) error

	// Reject marks a pending item rejected with an optional comment. Same
	// error contract as Approve.
	Reject(ctx context.Context, d Decision) error
}
