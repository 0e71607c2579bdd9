package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/auth"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/jwt"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/validator"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandler struct {
	authSvc auth.AuthService
	jwtSvc  jwt.Service
}

func NewAuthHandler(authSvc auth.AuthService, jwtSvc jwt.Service) AuthHandler {
	return &authHandler{authSvc: authSvc, jwtSvc: jwtSvc}
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var errs validator.ValidationErrors
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(req.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtSvc.RefreshTokenCookie(resp.RefreshToken, resp.RefreshExp))
	response.Success(w, resp)
}

func (h *authHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.authSvc.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		token = cookie.Value
	}

	if err := h.authSvc.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie client-side too.
	http.SetCookie(w, h.jwtSvc.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out", nil)
}
