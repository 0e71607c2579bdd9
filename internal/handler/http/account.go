package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type accountHandler struct {
	accountSvc account.AccountService
}

func NewAccountHandler(accountSvc account.AccountService) AccountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

func (h *accountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req account.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.accountSvc.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Account created", resp)
}

func (h *accountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.accountSvc.GetByID(r.Context(), chi.URLParam(r, "accountID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *accountHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := account.ListAccountsFilter{Search: query.Get("search")}
	if t := query.Get("type"); t != "" {
		parsed := account.ParseType(t)
		filter.Type = &parsed
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	accounts, total, err := h.accountSvc.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	meta := &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}
	if filter.Limit > 0 {
		meta.TotalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, accounts, meta)
}

func (h *accountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req account.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "accountID")

	if err := h.accountSvc.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Account updated", nil)
}

func (h *accountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.accountSvc.Delete(r.Context(), chi.URLParam(r, "accountID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Account deleted", nil)
}
