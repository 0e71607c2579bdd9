package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type visitRepository struct {
	db *database.DB
}

func NewVisitRepository(db *database.DB) visit.VisitRepository {
	return &visitRepository{db: db}
}

func scanVisit(row pgx.Row) (visit.Visit, error) {
	var v visit.Visit
	var date time.Time
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.AccountID,
		&v.AccountName,
		&v.AccountType,
		&date,
		&v.Purpose,
		&v.Notes,
		&v.Latitude,
		&v.Longitude,
		&v.CreatedAt,
	)
	if err != nil {
		return visit.Visit{}, err
	}
	v.Date = dates.FromTime(date)
	return v, nil
}

const visitColumns = `id, user_id, account_id, account_name, account_type, visit_date, purpose, notes, latitude, longitude, created_at`

func (r *visitRepository) Create(ctx context.Context, v visit.Visit) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = time.Now()

	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		v.ID, v.UserID, v.AccountID, v.AccountName, string(v.AccountType),
		v.Date.String(), v.Purpose, v.Notes, v.Latitude, v.Longitude, v.CreatedAt,
	)
	if err != nil {
		return visit.Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}
	return v, nil
}

func (r *visitRepository) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`
	v, err := scanVisit(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return visit.Visit{}, visit.ErrVisitNotFound
	}
	if err != nil {
		return visit.Visit{}, fmt.Errorf("failed to get visit: %w", err)
	}
	return v, nil
}

func (r *visitRepository) ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]visit.Visit, error) {
	return r.list(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE user_id = $1 AND visit_date BETWEEN $2 AND $3
		ORDER BY visit_date DESC, created_at DESC
	`, userID, rng.Start.String(), rng.End.String())
}

func (r *visitRepository) ListByUsersAndRange(ctx context.Context, userIDs []string, rng dates.Range) ([]visit.Visit, error) {
	return r.list(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE user_id = ANY($1) AND visit_date BETWEEN $2 AND $3
		ORDER BY visit_date DESC, created_at DESC
	`, userIDs, rng.Start.String(), rng.End.String())
}

func (r *visitRepository) list(ctx context.Context, query string, args ...interface{}) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
