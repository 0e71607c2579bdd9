package target

import "context"

type TargetService interface {
	// Upsert stores a rep's monthly target, one row per (user, month).
	Upsert(ctx context.Context, setByID string, req UpsertTargetRequest) (TargetResponse, error)
	// Get returns the stored target; ErrTargetNotFound when none is set.
	Get(ctx context.Context, userID, month string) (TargetResponse, error)
	// GetProgress combines the month's achieved stats with the stored target.
	// A missing target is a normal state: every category reports target 0.
	GetProgress(ctx context.Context, userID, month string) (ProgressReport, error)
}
