package account

import "context"

type AccountRepository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	List(ctx context.Context, filter ListAccountsFilter) ([]Account, int64, error)
	Update(ctx context.Context, req UpdateAccountRequest) error
	Delete(ctx context.Context, id string) error
}
