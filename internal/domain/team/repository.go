package team

import "context"

type TeamRepository interface {
	// GetRoster returns the active reps reporting to managerID.
	GetRoster(ctx context.Context, managerID string) ([]RosterMember, error)
}
