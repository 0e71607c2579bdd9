package team

import "context"

type TeamService interface {
	// GetRoster serves the manager's roster, from cache while fresh.
	GetRoster(ctx context.Context, managerID string) (RosterResponse, error)
	// InvalidateRoster drops the cached roster, forcing the next read to
	// hit the store.
	InvalidateRoster(ctx context.Context, managerID string) error
	// MemberIDs returns just the user IDs of the roster, cache-backed.
	MemberIDs(ctx context.Context, managerID string) ([]string, error)
}
