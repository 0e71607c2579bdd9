package account

import "context"

type AccountService interface {
	Create(ctx context.Context, createdByID string, req CreateAccountRequest) (AccountResponse, error)
	GetByID(ctx context.Context, id string) (AccountResponse, error)
	List(ctx context.Context, filter ListAccountsFilter) ([]AccountResponse, int64, error)
	Update(ctx context.Context, req UpdateAccountRequest) error
	Delete(ctx context.Context, id string) error
}
