package visit

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type VisitRepository interface {
	Create(ctx context.Context, v Visit) (Visit, error)
	GetByID(ctx context.Context, id string) (Visit, error)
	ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]Visit, error)
	ListByUsersAndRange(ctx context.Context, userIDs []string, rng dates.Range) ([]Visit, error)
}
