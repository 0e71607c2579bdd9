package team

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/cache"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/team"
)

type Service struct {
	repo   team.TeamRepository
	cache  *cache.RosterCache
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo team.TeamRepository, rosterCache *cache.RosterCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  rosterCache,
		logger: logger,
		now:    time.Now,
	}
}

// GetRoster serves the manager's roster from cache while fresh. Cache
// failures degrade to a store read; they are logged, never surfaced.
func (s *Service) GetRoster(ctx context.Context, managerID string) (team.RosterResponse, error) {
	now := s.now()

	entry, found, err := s.cache.Get(ctx, managerID)
	if err != nil {
		s.logger.Warn("roster cache read failed",
			slog.String("manager_id", managerID),
			slog.Any("error", err),
		)
	}
	if found && !entry.IsStale(now, s.cache.TTL()) {
		return team.RosterResponse{
			Members:   entry.Members,
			FetchedAt: entry.FetchedAt,
			FromCache: true,
		}, nil
	}

	members, err := s.repo.GetRoster(ctx, managerID)
	if err != nil {
		return team.RosterResponse{}, fmt.Errorf("failed to load roster: %w", err)
	}

	fresh := cache.RosterEntry{Members: members, FetchedAt: now}
	if err := s.cache.Set(ctx, managerID, fresh); err != nil {
		s.logger.Warn("roster cache write failed",
			slog.String("manager_id", managerID),
			slog.Any("error", err),
		)
	}

	return team.RosterResponse{Members: members, FetchedAt: now}, nil
}

func (s *Service) InvalidateRoster(ctx context.Context, managerID string) error {
	return s.cache.Invalidate(ctx, managerID)
}

func (s *Service) MemberIDs(ctx context.Context, managerID string) ([]string, error) {
	roster, err := s.GetRoster(ctx, managerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(roster.Members))
	for _, m := range roster.Members {
		ids = append(ids, m.UserID)
	}
	return ids, nil
}
