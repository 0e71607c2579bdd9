package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/user"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

type Service struct {
	userRepo       user.UserRepository
	visitRepo      visit.VisitRepository
	sheetSaleRepo  sheetsale.SheetSaleRepository
	expenseRepo    expense.ExpenseRepository
	attendanceRepo attendance.AttendanceRepository
	statsRepo      stats.StatsRepository

	loc   *time.Location
	today func() dates.Date
}

func NewService(
	userRepo user.UserRepository,
	visitRepo visit.VisitRepository,
	sheetSaleRepo sheetsale.SheetSaleRepository,
	expenseRepo expense.ExpenseRepository,
	attendanceRepo attendance.AttendanceRepository,
	statsRepo stats.StatsRepository,
	loc *time.Location,
) *Service {
	s := &Service{
		userRepo:       userRepo,
		visitRepo:      visitRepo,
		sheetSaleRepo:  sheetSaleRepo,
		expenseRepo:    expenseRepo,
		attendanceRepo: attendanceRepo,
		statsRepo:      statsRepo,
		loc:            loc,
	}
	s.today = func() dates.Date { return dates.Today(s.loc) }
	return s
}

func (s *Service) GetUserStats(ctx context.Context, userID string, kind dates.RangeKind, custom dates.Range) (stats.UserStatsResponse, error) {
	today := s.today()
	rng, err := dates.ResolveRange(kind, today, custom)
	if err != nil {
		return stats.UserStatsResponse{}, err
	}

	var (
		u        user.User
		visits   []visit.Visit
		sales    []sheetsale.SheetSale
		expenses []expense.Expense
		events   []attendance.Event
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		u, err = s.userRepo.GetByID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		visits, err = s.visitRepo.ListByUserAndRange(gCtx, userID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.sheetSaleRepo.ListByUserAndRange(gCtx, userID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.ListByUserAndRange(gCtx, userID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.attendanceRepo.ListByUserAndRange(gCtx, userID, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.UserStatsResponse{}, fmt.Errorf("failed to fetch user stats: %w", err)
	}

	return stats.UserStatsResponse{
		UserID:   userID,
		UserName: u.FullName,
		Range:    rng,
		Stats:    Aggregate(rng, today, visits, sales, expenses, events),
	}, nil
}

func (s *Service) GetTeamStats(ctx context.Context, managerID string, kind dates.RangeKind, custom dates.Range) (stats.TeamStatsResponse, error) {
	today := s.today()
	rng, err := dates.ResolveRange(kind, today, custom)
	if err != nil {
		return stats.TeamStatsResponse{}, err
	}

	var (
		rollups []stats.RepRollup
		daily   []stats.DailyActivity
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rollups, err = s.statsRepo.TeamRollup(gCtx, managerID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = s.statsRepo.TeamDailyActivity(gCtx, managerID, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.TeamStatsResponse{}, fmt.Errorf("failed to fetch team stats: %w", err)
	}

	resp := stats.TeamStatsResponse{
		Range:         rng,
		TeamSize:      len(rollups),
		Expenses:      decimal.Zero,
		Reps:          rollups,
		DailyActivity: daily,
	}
	for _, r := range rollups {
		resp.Visits += r.Visits
		resp.Sheets += r.Sheets
		resp.Expenses = resp.Expenses.Add(r.Expenses)
	}
	return resp, nil
}

func (s *Service) GetHeatmap(ctx context.Context, managerID string, req stats.HeatmapRequest) (stats.HeatmapResponse, error) {
	today := s.today()

	view := req.View
	hasWindow := req.StartDate != "" || req.EndDate != ""

	var rng, window dates.Range
	switch {
	case hasWindow:
		start, err := dates.Parse(req.StartDate)
		if err != nil {
			return stats.HeatmapResponse{}, err
		}
		end, err := dates.Parse(req.EndDate)
		if err != nil {
			return stats.HeatmapResponse{}, err
		}
		window = dates.Range{Start: start, End: end}.Normalize()
		// A sub-month window still renders its whole month; out-of-window
		// days are fetched too and flagged below.
		rng = dates.Range{Start: window.Start.FirstOfMonth(), End: window.Start.LastOfMonth()}
		view = stats.HeatmapMonth
	case view == stats.HeatmapWeek:
		rng = dates.Range{Start: today.AddDays(-6), End: today}
	case view == stats.HeatmapMonth:
		anchor := today
		if req.Month != "" {
			var err error
			anchor, err = dates.ParseMonth(req.Month)
			if err != nil {
				return stats.HeatmapResponse{}, err
			}
		}
		rng = dates.Range{Start: anchor.FirstOfMonth(), End: anchor.LastOfMonth()}
	default:
		return stats.HeatmapResponse{}, fmt.Errorf("invalid heatmap view %q", req.View)
	}

	singleRep := req.UserID != ""

	var days []stats.DailyActivity
	var err error
	if singleRep {
		days, err = s.statsRepo.RepDailyVisitCounts(ctx, req.UserID, rng)
	} else {
		days, err = s.statsRepo.TeamDailyActivity(ctx, managerID, rng)
	}
	if err != nil {
		return stats.HeatmapResponse{}, fmt.Errorf("failed to fetch heatmap activity: %w", err)
	}

	if hasWindow {
		for i := range days {
			days[i].IsInRange = window.Contains(days[i].Date)
		}
	}

	var grid stats.Grid
	if view == stats.HeatmapWeek {
		grid = BuildWeekGrid(days, today, singleRep)
	} else {
		grid = BuildMonthGrid(days, today, singleRep)
	}

	return stats.HeatmapResponse{View: view, Grid: grid}, nil
}
