package attendance

import (
	"context"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type AttendanceRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]Event, error)
	HasEventOnDate(ctx context.Context, userID string, typ EventType, date dates.Date) (bool, error)
}
