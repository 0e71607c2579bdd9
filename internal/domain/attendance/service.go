package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, userID string, req CheckRequest) (EventResponse, error)
	CheckOut(ctx context.Context, userID string, req CheckRequest) (EventResponse, error)
}
