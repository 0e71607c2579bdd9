package expense

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type ExpenseService interface {
	Submit(ctx context.Context, userID string, req CreateExpenseRequest) (ExpenseResponse, error)
	ListMine(ctx context.Context, userID string, rng dates.Range) ([]ExpenseResponse, error)
}
