package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	repo account.AccountRepository
}

func NewService(repo account.AccountRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, createdByID string, req account.CreateAccountRequest) (account.AccountResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return account.AccountResponse{}, fmt.Errorf("account name is required")
	}

	created, err := s.repo.Create(ctx, account.Account{
		Name:         name,
		Type:         account.ParseType(req.Type),
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		CreatedByID:  createdByID,
	})
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(created), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (account.AccountResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(a), nil
}

func (s *Service) List(ctx context.Context, filter account.ListAccountsFilter) ([]account.AccountResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxLimit {
		filter.Limit = defaultLimit
	}

	accounts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]account.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, account.ToResponse(a))
	}
	return out, total, nil
}

func (s *Service) Update(ctx context.Context, req account.UpdateAccountRequest) error {
	if req.Type != nil {
		normalized := string(account.ParseType(*req.Type))
		req.Type = &normalized
	}
	return s.repo.Update(ctx, req)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
