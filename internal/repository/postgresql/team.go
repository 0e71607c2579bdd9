package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/team"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) GetRoster(ctx context.Context, managerID string) ([]team.RosterMember, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, full_name, region, photo_url
		FROM users
		WHERE manager_id = $1 AND is_active = TRUE
		ORDER BY full_name
	`, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	var members []team.RosterMember
	for rows.Next() {
		var m team.RosterMember
		if err := rows.Scan(&m.UserID, &m.FullName, &m.Region, &m.PhotoURL); err != nil {
			return nil, fmt.Errorf("failed to scan roster member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
