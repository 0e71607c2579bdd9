package sheetsale

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type SheetSaleService interface {
	Submit(ctx context.Context, userID string, req CreateSheetSaleRequest) (SheetSaleResponse, error)
	ListMine(ctx context.Context, userID string, rng dates.Range) ([]SheetSaleResponse, error)
}
