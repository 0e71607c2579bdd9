package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/auth"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/user"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/jwt"
)

type Service struct {
	userRepo  user.UserRepository
	tokenRepo auth.TokenRepository
	jwtSvc    jwt.Service
}

func NewService(userRepo user.UserRepository, tokenRepo auth.TokenRepository, jwtSvc jwt.Service) *Service {
	return &Service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSvc:    jwtSvc,
	}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	accessToken, accessExp, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, u.ID, refreshToken, time.Unix(refreshExp, 0)); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		User: auth.AuthenticatedUser{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
		},
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	userID, err := s.jwtSvc.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	valid, err := s.tokenRepo.IsRefreshTokenValid(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	if !u.IsActive {
		return auth.RefreshResponse{}, auth.ErrUserInactive
	}

	accessToken, accessExp, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{AccessToken: accessToken, ExpiresAt: accessExp}, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}
