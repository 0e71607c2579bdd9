package target

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type Service struct {
	repo       target.TargetRepository
	statsSvc   stats.StatsService
	notifier   notification.Service
	thresholds Thresholds
}

func NewService(repo target.TargetRepository, statsSvc stats.StatsService, notifier notification.Service, thresholds Thresholds) *Service {
	return &Service{
		repo:       repo,
		statsSvc:   statsSvc,
		notifier:   notifier,
		thresholds: thresholds,
	}
}

func (s *Service) Upsert(ctx context.Context, setByID string, req target.UpsertTargetRequest) (target.TargetResponse, error) {
	if _, err := dates.ParseMonth(req.Month); err != nil {
		return target.TargetResponse{}, target.ErrInvalidMonth
	}
	for _, v := range req.ByAccountType {
		if v < 0 {
			return target.TargetResponse{}, target.ErrNegativeTarget
		}
	}
	for _, v := range req.ByCatalog {
		if v < 0 {
			return target.TargetResponse{}, target.ErrNegativeTarget
		}
	}

	stored, err := s.repo.Upsert(ctx, target.Target{
		UserID:        req.UserID,
		Month:         req.Month,
		ByAccountType: req.ByAccountType,
		ByCatalog:     req.ByCatalog,
		AutoRenew:     req.AutoRenew,
		SetByID:       setByID,
	})
	if err != nil {
		return target.TargetResponse{}, fmt.Errorf("failed to upsert target: %w", err)
	}

	// Best effort; the notifier logs its own failures.
	_ = s.notifier.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: req.UserID,
		SenderID:    &setByID,
		Type:        notification.TypeTargetAssigned,
		Title:       "Monthly target updated",
		Message:     fmt.Sprintf("Your targets for %s have been set", req.Month),
		Data:        map[string]interface{}{"month": req.Month},
	})

	return target.ToResponse(stored), nil
}

func (s *Service) Get(ctx context.Context, userID, month string) (target.TargetResponse, error) {
	if _, err := dates.ParseMonth(month); err != nil {
		return target.TargetResponse{}, target.ErrInvalidMonth
	}

	stored, err := s.repo.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		return target.TargetResponse{}, err
	}
	return target.ToResponse(stored), nil
}

func (s *Service) GetProgress(ctx context.Context, userID, month string) (target.ProgressReport, error) {
	first, err := dates.ParseMonth(month)
	if err != nil {
		return target.ProgressReport{}, target.ErrInvalidMonth
	}

	var stored *target.Target
	t, err := s.repo.GetByUserAndMonth(ctx, userID, month)
	switch {
	case err == nil:
		stored = &t
	case errors.Is(err, target.ErrTargetNotFound):
		// Progress without a target is a normal state.
	default:
		return target.ProgressReport{}, fmt.Errorf("failed to load target: %w", err)
	}

	monthRange := dates.Range{Start: first, End: first.LastOfMonth()}
	achieved, err := s.statsSvc.GetUserStats(ctx, userID, dates.RangeCustom, monthRange)
	if err != nil {
		return target.ProgressReport{}, fmt.Errorf("failed to load month stats: %w", err)
	}

	return CalculateProgress(month, achieved.Stats, stored, s.thresholds), nil
}
