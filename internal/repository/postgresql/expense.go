package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, user_id, expense_date, description, receipt_photos, status, reviewed_by, reviewed_at, comment, created_at`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	var date time.Time
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&date,
		&e.Description,
		&e.ReceiptPhotos,
		&e.Status,
		&e.ReviewedBy,
		&e.ReviewedAt,
		&e.Comment,
		&e.CreatedAt,
	)
	if err != nil {
		return expense.Expense{}, err
	}
	e.Date = dates.FromTime(date)
	return e, nil
}

func (r *expenseRepository) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now()

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO expenses (` + expenseColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.Exec(ctx, query,
			e.ID, e.UserID, e.Date.String(), e.Description, e.ReceiptPhotos,
			string(e.Status), e.ReviewedBy, e.ReviewedAt, e.Comment, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}

		for i := range e.Items {
			if e.Items[i].ID == "" {
				e.Items[i].ID = uuid.New().String()
			}
			e.Items[i].ExpenseID = e.ID

			_, err := tx.Exec(ctx, `
				INSERT INTO expense_items (id, expense_id, amount, category, description)
				VALUES ($1, $2, $3, $4, $5)
			`, e.Items[i].ID, e.ID, e.Items[i].Amount, string(e.Items[i].Category), e.Items[i].Description)
			if err != nil {
				return fmt.Errorf("failed to create expense item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return expense.Expense{}, err
	}
	return e, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	items, err := r.loadItems(ctx, []string{e.ID})
	if err != nil {
		return expense.Expense{}, err
	}
	e.Items = items[e.ID]
	return e, nil
}

// ListByUserAndRange returns approved expenses with their line items.
func (r *expenseRepository) ListByUserAndRange(ctx context.Context, userID string, rng dates.Range) ([]expense.Expense, error) {
	return r.list(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE user_id = $1 AND expense_date BETWEEN $2 AND $3 AND status = $4
		ORDER BY expense_date DESC, created_at DESC
	`, userID, rng.Start.String(), rng.End.String(), string(review.StatusApproved))
}

func (r *expenseRepository) ListMine(ctx context.Context, userID string, rng dates.Range) ([]expense.Expense, error) {
	return r.list(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE user_id = $1 AND expense_date BETWEEN $2 AND $3
		ORDER BY expense_date DESC, created_at DESC
	`, userID, rng.Start.String(), rng.End.String())
}

func (r *expenseRepository) list(ctx context.Context, query string, args ...interface{}) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	var ids []string
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, nil
	}

	itemsByExpense, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		expenses[i].Items = itemsByExpense[expenses[i].ID]
	}
	return expenses, nil
}

func (r *expenseRepository) loadItems(ctx context.Context, expenseIDs []string) (map[string][]expense.LineItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, expense_id, amount, category, description
		FROM expense_items
		WHERE expense_id = ANY($1)
		ORDER BY id
	`, expenseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]expense.LineItem)
	for rows.Next() {
		var item expense.LineItem
		if err := rows.Scan(&item.ID, &item.ExpenseID, &item.Amount, &item.Category, &item.Description); err != nil {
			return nil, fmt.Errorf("failed to scan expense item: %w", err)
		}
		items[item.ExpenseID] = append(items[item.ExpenseID], item)
	}
	return items, rows.Err()
}
