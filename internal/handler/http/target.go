package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
)

type TargetHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	GetMyProgress(w http.ResponseWriter, r *http.Request)
}

type targetHandler struct {
	targetSvc target.TargetService
}

func NewTargetHandler(targetSvc target.TargetService) TargetHandler {
	return &targetHandler{targetSvc: targetSvc}
}

func (h *targetHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req target.UpsertTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	resp, err := h.targetSvc.Upsert(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Target saved", resp)
}

func (h *targetHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.targetSvc.Get(r.Context(), chi.URLParam(r, "userID"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *targetHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	resp, err := h.targetSvc.GetProgress(r.Context(), chi.URLParam(r, "userID"), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *targetHandler) GetMyProgress(w http.ResponseWriter, r *http.Request) {
	resp, err := h.targetSvc.GetProgress(r.Context(), middleware.UserID(r), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
