package sheetsale

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type SheetSaleRepository interface {
	Create(ctx context.Context, s SheetSale) (SheetSale, error)
	GetByID(ctx context.Context, id string) (SheetSale, error)
	// ListByUserAndRange returns approved sales only; pending and rejected
	// submissions never count toward achievement.
	ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]SheetSale, error)
	ListMine(ctx context.Context, userID string, rng dates.Range) ([]SheetSale, error)
}
