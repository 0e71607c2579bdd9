package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type Service struct {
	repo attendance.AttendanceRepository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo attendance.AttendanceRepository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc, now: time.Now}
}

func (s *Service) CheckIn(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.EventResponse, error) {
	return s.record(ctx, userID, attendance.EventCheckIn, req)
}

func (s *Service) CheckOut(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.EventResponse, error) {
	return s.record(ctx, userID, attendance.EventCheckOut, req)
}

func (s *Service) record(ctx context.Context, userID string, typ attendance.EventType, req attendance.CheckRequest) (attendance.EventResponse, error) {
	now := s.now().In(s.loc)
	today := dates.FromTime(now)

	switch typ {
	case attendance.EventCheckIn:
		checkedIn, err := s.repo.HasEventOnDate(ctx, userID, attendance.EventCheckIn, today)
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to check attendance: %w", err)
		}
		if checkedIn {
			return attendance.EventResponse{}, attendance.ErrAlreadyCheckedIn
		}
	case attendance.EventCheckOut:
		checkedIn, err := s.repo.HasEventOnDate(ctx, userID, attendance.EventCheckIn, today)
		if err != nil {
			return attendance.EventResponse{}, fmt.Errorf("failed to check attendance: %w", err)
		}
		if !checkedIn {
			return attendance.EventResponse{}, attendance.ErrNotCheckedIn
		}
	}

	created, err := s.repo.Create(ctx, attendance.Event{
		UserID:    userID,
		Type:      typ,
		Date:      today,
		Timestamp: now,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}
	return attendance.ToResponse(created), nil
}
