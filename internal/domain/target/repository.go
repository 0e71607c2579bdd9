package target

import "context"

type TargetRepository interface {
	// Upsert writes the one target row for (userID, month).
	Upsert(ctx context.Context, t Target) (Target, error)
	// GetByUserAndMonth returns ErrTargetNotFound when no target is stored.
	GetByUserAndMonth(ctx context.Context, userID, month string) (Target, error)
	// ListAutoRenewByMonth returns all targets for month with AutoRenew set.
	ListAutoRenewByMonth(ctx context.Context, month string) ([]Target, error)
	// HasTargetForMonth reports whether (userID, month) already has a row.
	HasTargetForMonth(ctx context.Context, userID, month string) (bool, error)
}
