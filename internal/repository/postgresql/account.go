package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, name, type, contact_name, contact_phone, address, city, created_by_id, created_at, updated_at`

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.ContactName,
		&a.ContactPhone,
		&a.Address,
		&a.City,
		&a.CreatedByID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *accountRepository) Create(ctx context.Context, a account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.Exec(ctx, query,
		a.ID, a.Name, string(a.Type), a.ContactName, a.ContactPhone,
		a.Address, a.City, a.CreatedByID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return account.Account{}, account.ErrNameExists
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return a, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return account.Account{}, account.ErrAccountNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

func (r *accountRepository) List(ctx context.Context, filter account.ListAccountsFilter) ([]account.Account, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%') AND ($2::text IS NULL OR type = $2)`

	var typeArg *string
	if filter.Type != nil {
		s := string(*filter.Type)
		typeArg = &s
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM accounts ` + where
	if err := q.QueryRow(ctx, countQuery, filter.Search, typeArg).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts ` + where + `
		ORDER BY name
		LIMIT $3 OFFSET $4
	`
	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.Search, typeArg, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, total, rows.Err()
}

func (r *accountRepository) Update(ctx context.Context, req account.UpdateAccountRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET name = COALESCE($2, name),
		    type = COALESCE($3, type),
		    contact_name = COALESCE($4, contact_name),
		    contact_phone = COALESCE($5, contact_phone),
		    address = COALESCE($6, address),
		    city = COALESCE($7, city),
		    updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Type, req.ContactName, req.ContactPhone, req.Address, req.City)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrNameExists
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}
