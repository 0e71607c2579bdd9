package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
)

type ReviewHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type reviewHandler struct {
	reviewSvc review.ReviewService
}

func NewReviewHandler(reviewSvc review.ReviewService) ReviewHandler {
	return &reviewHandler{reviewSvc: reviewSvc}
}

func (h *reviewHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reviewSvc.GetPending(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

type decisionRequest struct {
	Type    review.ItemType `json:"type"`
	Comment *string         `json:"comment,omitempty"`
}

func (h *reviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	err := h.reviewSvc.Approve(r.Context(), middleware.UserID(r), chi.URLParam(r, "itemID"), req.Type)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Item approved", nil)
}

func (h *reviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	err := h.reviewSvc.Reject(r.Context(), middleware.UserID(r), chi.URLParam(r, "itemID"), req.Type, req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Item rejected", nil)
}
