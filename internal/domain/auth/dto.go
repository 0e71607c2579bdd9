package auth

import "github.com/fieldtrack/fieldsales-backend-go/internal/domain/user"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticatedUser struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     user.Role `json:"role"`
}

type LoginResponse struct {
	User         AuthenticatedUser `json:"user"`
	AccessToken  string            `json:"access_token"`
	ExpiresAt    int64             `json:"expires_at"`
	RefreshToken string            `json:"-"`
	RefreshExp   int64             `json:"-"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
