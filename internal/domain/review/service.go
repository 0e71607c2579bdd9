package review

import "context"

type ReviewService interface {
	// GetPending returns the manager's review queue, served from the local
	// snapshot when warm and refetched otherwise.
	GetPending(ctx context.Context, managerID string) (PendingItemsResponse, error)

	// Approve resolves a pending item. The local pending snapshot is updated
	// optimistically before the store is written; on failure the snapshot is
	// discarded and refetched, never inverse-patched.
	Approve(ctx context.Context, managerID, itemID string, itemType ItemType) error

	// Reject resolves a pending item with an optional reason, with the same
	// optimistic-update contract as Approve.
	Reject(ctx context.Context, managerID, itemID string, itemType ItemType, comment *string) error
}
