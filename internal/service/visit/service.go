package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type Service struct {
	repo        visit.VisitRepository
	accountRepo account.AccountRepository
	loc         *time.Location
}

func NewService(repo visit.VisitRepository, accountRepo account.AccountRepository, loc *time.Location) *Service {
	return &Service{repo: repo, accountRepo: accountRepo, loc: loc}
}

func (s *Service) LogVisit(ctx context.Context, userID string, req visit.CreateVisitRequest) (visit.VisitResponse, error) {
	a, err := s.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return visit.VisitResponse{}, err
	}

	date := dates.Today(s.loc)
	if req.Date != "" {
		date, err = dates.Parse(req.Date)
		if err != nil {
			return visit.VisitResponse{}, err
		}
	}

	created, err := s.repo.Create(ctx, visit.Visit{
		UserID:      userID,
		AccountID:   a.ID,
		AccountName: a.Name,
		// Snapshot the type so later account edits don't rewrite history.
		AccountType: a.Type,
		Date:        date,
		Purpose:     req.Purpose,
		Notes:       req.Notes,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return visit.VisitResponse{}, fmt.Errorf("failed to log visit: %w", err)
	}
	return visit.ToResponse(created), nil
}

func (s *Service) ListMine(ctx context.Context, userID string, rng dates.Range) ([]visit.VisitResponse, error) {
	visits, err := s.repo.ListByUserAndRange(ctx, userID, rng.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	out := make([]visit.VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, visit.ToResponse(v))
	}
	return out, nil
}
