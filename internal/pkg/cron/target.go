package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type TargetJobs struct {
	targetRepo      target.TargetRepository
	notificationSvc notification.Service
	loc             *time.Location
}

func NewTargetJobs(targetRepo target.TargetRepository, notificationSvc notification.Service, loc *time.Location) *TargetJobs {
	return &TargetJobs{
		targetRepo:      targetRepo,
		notificationSvc: notificationSvc,
		loc:             loc,
	}
}

func (j *TargetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("renew_monthly_targets", 1*time.Hour, j.RenewMonthlyTargets)
}

// RenewMonthlyTargets copies auto-renew targets from the previous month
// into the current one. The HasTargetForMonth guard makes the hourly run
// idempotent and never overwrites a target a manager already set.
func (j *TargetJobs) RenewMonthlyTargets(ctx context.Context) error {
	today := dates.Today(j.loc)

	// Only run on the first day of the month
	if today.Day() != 1 {
		return nil
	}

	currentMonth := today.MonthKey()
	previousMonth := today.AddMonths(-1).MonthKey()

	slog.Info("Cron: Starting target renewal job", "from", previousMonth, "to", currentMonth)

	targets, err := j.targetRepo.ListAutoRenewByMonth(ctx, previousMonth)
	if err != nil {
		return fmt.Errorf("failed to list auto-renew targets: %w", err)
	}

	renewed := 0
	for _, t := range targets {
		exists, err := j.targetRepo.HasTargetForMonth(ctx, t.UserID, currentMonth)
		if err != nil {
			slog.Error("Cron: Failed to check existing target", "user_id", t.UserID, "error", err)
			continue
		}
		if exists {
			continue
		}

		_, err = j.targetRepo.Upsert(ctx, target.Target{
			UserID:        t.UserID,
			Month:         currentMonth,
			ByAccountType: t.ByAccountType,
			ByCatalog:     t.ByCatalog,
			AutoRenew:     true,
			SetByID:       t.SetByID,
		})
		if err != nil {
			slog.Error("Cron: Failed to renew target", "user_id", t.UserID, "error", err)
			continue
		}
		renewed++

		_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: t.UserID,
			Type:        notification.TypeTargetRenewed,
			Title:       "Monthly target renewed",
			Message:     fmt.Sprintf("Your targets for %s were carried over from %s", currentMonth, previousMonth),
			Data:        map[string]interface{}{"month": currentMonth},
		})
	}

	slog.Info("Cron: Target renewal job completed", "candidates", len(targets), "renewed", renewed)
	return nil
}
