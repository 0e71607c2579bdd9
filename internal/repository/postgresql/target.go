package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
)

type targetRepository struct {
	db *database.DB
}

func NewTargetRepository(db *database.DB) target.TargetRepository {
	return &targetRepository{db: db}
}

const targetColumns = `id, user_id, month, by_account_type, by_catalog, auto_renew, set_by_id, created_at, updated_at`

func scanTarget(row pgx.Row) (target.Target, error) {
	var t target.Target
	var byAccountType, byCatalog []byte
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Month,
		&byAccountType,
		&byCatalog,
		&t.AutoRenew,
		&t.SetByID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return target.Target{}, err
	}

	if err := json.Unmarshal(byAccountType, &t.ByAccountType); err != nil {
		return target.Target{}, fmt.Errorf("failed to unmarshal account type targets: %w", err)
	}
	if err := json.Unmarshal(byCatalog, &t.ByCatalog); err != nil {
		return target.Target{}, fmt.Errorf("failed to unmarshal catalog targets: %w", err)
	}
	return t, nil
}

func (r *targetRepository) Upsert(ctx context.Context, t target.Target) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.ByAccountType == nil {
		t.ByAccountType = map[account.Type]int{}
	}
	if t.ByCatalog == nil {
		t.ByCatalog = map[sheetsale.Catalog]int{}
	}

	byAccountType, err := json.Marshal(t.ByAccountType)
	if err != nil {
		return target.Target{}, fmt.Errorf("failed to marshal account type targets: %w", err)
	}
	byCatalog, err := json.Marshal(t.ByCatalog)
	if err != nil {
		return target.Target{}, fmt.Errorf("failed to marshal catalog targets: %w", err)
	}

	query := `
		INSERT INTO targets (` + targetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, month) DO UPDATE
		SET by_account_type = EXCLUDED.by_account_type,
		    by_catalog = EXCLUDED.by_catalog,
		    auto_renew = EXCLUDED.auto_renew,
		    set_by_id = EXCLUDED.set_by_id,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + targetColumns + `
	`
	stored, err := scanTarget(q.QueryRow(ctx, query,
		t.ID, t.UserID, t.Month, byAccountType, byCatalog, t.AutoRenew, t.SetByID, t.CreatedAt, t.UpdatedAt,
	))
	if err != nil {
		return target.Target{}, fmt.Errorf("failed to upsert target: %w", err)
	}
	return stored, nil
}

func (r *targetRepository) GetByUserAndMonth(ctx context.Context, userID, month string) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + targetColumns + ` FROM targets WHERE user_id = $1 AND month = $2`
	t, err := scanTarget(q.QueryRow(ctx, query, userID, month))
	if errors.Is(err, pgx.ErrNoRows) {
		return target.Target{}, target.ErrTargetNotFound
	}
	if err != nil {
		return target.Target{}, fmt.Errorf("failed to get target: %w", err)
	}
	return t, nil
}

func (r *targetRepository) ListAutoRenewByMonth(ctx context.Context, month string) ([]target.Target, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+targetColumns+`
		FROM targets
		WHERE month = $1 AND auto_renew = TRUE
	`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-renew targets: %w", err)
	}
	defer rows.Close()

	var targets []target.Target
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *targetRepository) HasTargetForMonth(ctx context.Context, userID, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM targets WHERE user_id = $1 AND month = $2)`,
		userID, month,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check target existence: %w", err)
	}
	return exists, nil
}
