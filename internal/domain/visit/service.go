package visit

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type VisitService interface {
	LogVisit(ctx context.Context, userID string, req CreateVisitRequest) (VisitResponse, error)
	ListMine(ctx context.Context, userID string, rng dates.Range) ([]VisitResponse, error)
}
