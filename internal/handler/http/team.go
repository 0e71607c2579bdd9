package http

import (
	"net/http"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/team"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	GetRoster(w http.ResponseWriter, r *http.Request)
	RefreshRoster(w http.ResponseWriter, r *http.Request)
}

type teamHandler struct {
	teamSvc team.TeamService
}

func NewTeamHandler(teamSvc team.TeamService) TeamHandler {
	return &teamHandler{teamSvc: teamSvc}
}

func (h *teamHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	resp, err := h.teamSvc.GetRoster(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *teamHandler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.UserID(r)
	if err := h.teamSvc.InvalidateRoster(r.Context(), managerID); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.teamSvc.GetRoster(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
