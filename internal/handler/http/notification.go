package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/notification"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandler struct {
	notificationSvc notification.Service
}

func NewNotificationHandler(notificationSvc notification.Service) NotificationHandler {
	return &notificationHandler{notificationSvc: notificationSvc}
}

func (h *notificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, unread, err := h.notificationSvc.List(r.Context(), middleware.UserID(r), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"notifications": items,
		"unread_count":  unread,
	})
}

func (h *notificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.notificationSvc.MarkRead(r.Context(), chi.URLParam(r, "notificationID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked read", nil)
}
