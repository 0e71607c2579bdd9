package expense

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	// ListByUserAndRange returns approved expenses with their line items;
	// pending and rejected submissions never count toward spend stats.
	ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]Expense, error)
	ListMine(ctx context.Context, userID string, rng dates.Range) ([]Expense, error)
}
