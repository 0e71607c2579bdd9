package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_events (id, user_id, event_type, event_date, event_timestamp, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query,
		e.ID, e.UserID, string(e.Type), e.Date.String(), e.Timestamp, e.Latitude, e.Longitude,
	)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}
	return e, nil
}

func (r *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, user_id, event_type, event_date, event_timestamp, latitude, longitude
		FROM attendance_events
		WHERE user_id = $1 AND event_date BETWEEN $2 AND $3
		ORDER BY event_timestamp
	`, userID, rng.Start.String(), rng.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		var date time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &date, &e.Timestamp, &e.Latitude, &e.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		e.Date = dates.FromTime(date)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *attendanceRepository) HasEventOnDate(ctx context.Context, userID string, typ attendance.EventType, date dates.Date) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_events
			WHERE user_id = $1 AND event_type = $2 AND event_date = $3
		)
	`, userID, string(typ), date.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance event: %w", err)
	}
	return exists, nil
}
