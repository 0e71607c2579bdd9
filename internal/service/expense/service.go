package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type Service struct {
	repo expense.ExpenseRepository
	loc  *time.Location
}

func NewService(repo expense.ExpenseRepository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

func (s *Service) Submit(ctx context.Context, userID string, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if len(req.Items) == 0 {
		return expense.ExpenseResponse{}, expense.ErrNoLineItems
	}

	items := make([]expense.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Amount.IsNegative() {
			return expense.ExpenseResponse{}, expense.ErrNegativeAmount
		}
		items = append(items, expense.LineItem{
			Amount:      item.Amount,
			Category:    expense.ParseCategory(item.Category),
			Description: item.Description,
		})
	}

	date := dates.Today(s.loc)
	if req.Date != "" {
		var err error
		date, err = dates.Parse(req.Date)
		if err != nil {
			return expense.ExpenseResponse{}, err
		}
	}

	created, err := s.repo.Create(ctx, expense.Expense{
		UserID:        userID,
		Date:          date,
		Items:         items,
		Description:   req.Description,
		ReceiptPhotos: req.ReceiptPhotos,
		Status:        review.StatusPending,
	})
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to submit expense: %w", err)
	}
	return expense.ToResponse(created), nil
}

func (s *Service) ListMine(ctx context.Context, userID string, rng dates.Range) ([]expense.ExpenseResponse, error) {
	expenses, err := s.repo.ListMine(ctx, userID, rng.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	out := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, expense.ToResponse(e))
	}
	return out, nil
}
