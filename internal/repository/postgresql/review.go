package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepository{db: db}
}

// ListPending merges both submission kinds into one queue, newest first.
func (r *reviewRepository) ListPending(ctx context.Context, managerID string) ([]review.PendingItem, review.PendingCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, 'sheets' AS item_type, s.user_id, u.full_name, s.sale_date,
		       s.sheets_count, NULL::numeric AS amount, s.catalog::text, NULL::text AS category,
		       NULL::text AS description, NULL::text[] AS receipt_photos, s.created_at
		FROM sheet_sales s
		JOIN users u ON u.id = s.user_id
		WHERE u.manager_id = $1 AND s.status = 'pending'
		UNION ALL
		SELECT e.id, 'expense' AS item_type, e.user_id, u.full_name, e.expense_date,
		       NULL::int AS sheets_count,
		       (SELECT COALESCE(SUM(i.amount), 0) FROM expense_items i WHERE i.expense_id = e.id) AS amount,
		       NULL::text AS catalog, NULL::text AS category,
		       e.description, e.receipt_photos, e.created_at
		FROM expenses e
		JOIN users u ON u.id = e.user_id
		WHERE u.manager_id = $1 AND e.status = 'pending'
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, review.PendingCounts{}, fmt.Errorf("failed to list pending items: %w", err)
	}
	defer rows.Close()

	var items []review.PendingItem
	var counts review.PendingCounts
	for rows.Next() {
		var item review.PendingItem
		var date time.Time
		var sheetsCount *int
		var amount *decimal.Decimal
		if err := rows.Scan(
			&item.ID, &item.Type, &item.UserID, &item.UserName, &date,
			&sheetsCount, &amount, &item.Catalog, &item.Category,
			&item.Description, &item.ReceiptPhotos, &item.SubmittedAt,
		); err != nil {
			return nil, review.PendingCounts{}, fmt.Errorf("failed to scan pending item: %w", err)
		}
		item.Date = dates.FromTime(date)
		item.SheetsCount = sheetsCount
		item.Amount = amount

		switch item.Type {
		case review.ItemSheets:
			counts.Sheets++
		case review.ItemExpense:
			counts.Expenses++
		}
		counts.Total++
		items = append(items, item)
	}
	return items, counts, rows.Err()
}

func (r *reviewRepository) Approve(ctx context.Context, d review.Decision) error {
	return r.decide(ctx, d, review.StatusApproved)
}

func (r *reviewRepository) Reject(ctx context.Context, d review.Decision) error {
	return r.decide(ctx, d, review.StatusRejected)
}

// decide flips a pending row to its terminal status. The status guard in
// the WHERE clause makes concurrent decisions race-safe: the second writer
// matches zero rows and gets ErrAlreadyProcessed.
func (r *reviewRepository) decide(ctx context.Context, d review.Decision, status review.Status) error {
	table := tableForItemType(d.Type)
	if table == "" {
		return review.ErrUnknownItemType
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), comment = $4
		WHERE id = $1 AND status = 'pending'
	`, table)

	tag, err := q.Exec(ctx, query, d.ItemID, string(status), d.ReviewerID, d.Comment)
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, table, d.ItemID)
	}
	return nil
}

// classifyMiss distinguishes a decided row from a missing one.
func (r *reviewRepository) classifyMiss(ctx context.Context, table, itemID string) error {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := q.QueryRow(ctx, query, itemID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check item existence: %w", err)
	}
	if exists {
		return review.ErrAlreadyProcessed
	}
	return review.ErrItemNotFound
}

func tableForItemType(t review.ItemType) string {
	switch t {
	case review.ItemSheets:
		return "sheet_sales"
	case review.ItemExpense:
		return "expenses"
	default:
		return ""
	}
}
