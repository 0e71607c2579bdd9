package sheetsale

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type Service struct {
	repo sheetsale.SheetSaleRepository
	loc  *time.Location
}

func NewService(repo sheetsale.SheetSaleRepository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

func (s *Service) Submit(ctx context.Context, userID string, req sheetsale.CreateSheetSaleRequest) (sheetsale.SheetSaleResponse, error) {
	if req.SheetsCount <= 0 {
		return sheetsale.SheetSaleResponse{}, sheetsale.ErrInvalidSheetCount
	}

	date := dates.Today(s.loc)
	if req.Date != "" {
		var err error
		date, err = dates.Parse(req.Date)
		if err != nil {
			return sheetsale.SheetSaleResponse{}, err
		}
	}

	// Unknown catalogs are stored as submitted; aggregation decides how to
	// count them.
	catalog, _ := sheetsale.ParseCatalog(req.Catalog)

	created, err := s.repo.Create(ctx, sheetsale.SheetSale{
		UserID:      userID,
		AccountID:   req.AccountID,
		Catalog:     catalog,
		SheetsCount: req.SheetsCount,
		Date:        date,
		Status:      review.StatusPending,
	})
	if err != nil {
		return sheetsale.SheetSaleResponse{}, fmt.Errorf("failed to submit sheet sale: %w", err)
	}
	return sheetsale.ToResponse(created), nil
}

func (s *Service) ListMine(ctx context.Context, userID string, rng dates.Range) ([]sheetsale.SheetSaleResponse, error) {
	sales, err := s.repo.ListMine(ctx, userID, rng.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet sales: %w", err)
	}

	out := make([]sheetsale.SheetSaleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, sheetsale.ToResponse(sale))
	}
	return out, nil
}
