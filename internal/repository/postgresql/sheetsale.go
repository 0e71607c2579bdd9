package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type sheetSaleRepository struct {
	db *database.DB
}

func NewSheetSaleRepository(db *database.DB) sheetsale.SheetSaleRepository {
	return &sheetSaleRepository{db: db}
}

const sheetSaleColumns = `id, user_id, account_id, catalog, sheets_count, sale_date, status, reviewed_by, reviewed_at, comment, created_at`

func scanSheetSale(row pgx.Row) (sheetsale.SheetSale, error) {
	var s sheetsale.SheetSale
	var date time.Time
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.AccountID,
		&s.Catalog,
		&s.SheetsCount,
		&date,
		&s.Status,
		&s.ReviewedBy,
		&s.ReviewedAt,
		&s.Comment,
		&s.CreatedAt,
	)
	if err != nil {
		return sheetsale.SheetSale{}, err
	}
	s.Date = dates.FromTime(date)
	return s, nil
}

func (r *sheetSaleRepository) Create(ctx context.Context, s sheetsale.SheetSale) (sheetsale.SheetSale, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	query := `
		INSERT INTO sheet_sales (` + sheetSaleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		s.ID, s.UserID, s.AccountID, string(s.Catalog), s.SheetsCount,
		s.Date.String(), string(s.Status), s.ReviewedBy, s.ReviewedAt, s.Comment, s.CreatedAt,
	)
	if err != nil {
		return sheetsale.SheetSale{}, fmt.Errorf("failed to create sheet sale: %w", err)
	}
	return s, nil
}

func (r *sheetSaleRepository) GetByID(ctx context.Context, id string) (sheetsale.SheetSale, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sheetSaleColumns + ` FROM sheet_sales WHERE id = $1`
	s, err := scanSheetSale(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return sheetsale.SheetSale{}, sheetsale.ErrSheetSaleNotFound
	}
	if err != nil {
		return sheetsale.SheetSale{}, fmt.Errorf("failed to get sheet sale: %w", err)
	}
	return s, nil
}

// ListByUserAndRange returns approved sales only: achievement and stats
// never count pending or rejected submissions.
func (r *sheetSaleRepository) ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]sheetsale.SheetSale, error) {
	return r.list(ctx, `
		SELECT `+sheetSaleColumns+`
		FROM sheet_sales
		WHERE user_id = $1 AND sale_date BETWEEN $2 AND $3 AND status = $4
		ORDER BY sale_date DESC, created_at DESC
	`, userID, rng.Start.String(), rng.End.String(), string(review.StatusApproved))
}

func (r *sheetSaleRepository) ListMine(ctx context.Context, userID string, rng dates.Range) ([]sheetsale.SheetSale, error) {
	return r.list(ctx, `
		SELECT `+sheetSaleColumns+`
		FROM sheet_sales
		WHERE user_id = $1 AND sale_date BETWEEN $2 AND $3
		ORDER BY sale_date DESC, created_at DESC
	`, userID, rng.Start.String(), rng.End.String())
}

func (r *sheetSaleRepository) list(ctx context.Context, query string, args ...interface{}) ([]sheetsale.SheetSale, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet sales: %w", err)
	}
	defer rows.Close()

	var sales []sheetsale.SheetSale
	for rows.Next() {
		s, err := scanSheetSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sheet sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
