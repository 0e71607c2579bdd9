package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/team"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/user"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type StatsHandler interface {
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetUserStats(w http.ResponseWriter, r *http.Request)
	GetTeamStats(w http.ResponseWriter, r *http.Request)
	GetHeatmap(w http.ResponseWriter, r *http.Request)
}

type statsHandler struct {
	statsSvc stats.StatsService
	teamSvc  team.TeamService
}

func NewStatsHandler(statsSvc stats.StatsService, teamSvc team.TeamService) StatsHandler {
	return &statsHandler{statsSvc: statsSvc, teamSvc: teamSvc}
}

// parseRangeQuery reads range=today|week|month|custom plus the optional
// custom start_date/end_date pair.
func parseRangeQuery(r *http.Request) (dates.RangeKind, dates.Range, error) {
	kindParam := r.URL.Query().Get("range")
	if kindParam == "" {
		kindParam = string(dates.RangeMonth)
	}
	kind, err := dates.ParseRangeKind(kindParam)
	if err != nil {
		return "", dates.Range{}, err
	}

	var custom dates.Range
	if kind == dates.RangeCustom {
		start, err := dates.Parse(r.URL.Query().Get("start_date"))
		if err != nil {
			return "", dates.Range{}, err
		}
		end, err := dates.Parse(r.URL.Query().Get("end_date"))
		if err != nil {
			return "", dates.Range{}, err
		}
		custom = dates.Range{Start: start, End: end}
	}
	return kind, custom, nil
}

func (h *statsHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	kind, custom, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.statsSvc.GetUserStats(r.Context(), middleware.UserID(r), kind, custom)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *statsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	// Managers can only read stats of reps on their own team.
	inTeam, err := h.isInTeam(r, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !inTeam {
		response.HandleError(w, user.ErrNotInTeam)
		return
	}

	kind, custom, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.statsSvc.GetUserStats(r.Context(), userID, kind, custom)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *statsHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	kind, custom, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.statsSvc.GetTeamStats(r.Context(), middleware.UserID(r), kind, custom)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *statsHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	view := stats.HeatmapView(r.URL.Query().Get("view"))
	if view == "" {
		view = stats.HeatmapWeek
	}

	req := stats.HeatmapRequest{
		View:      view,
		UserID:    r.URL.Query().Get("user_id"),
		Month:     r.URL.Query().Get("month"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if req.UserID != "" {
		inTeam, err := h.isInTeam(r, req.UserID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !inTeam {
			response.HandleError(w, user.ErrNotInTeam)
			return
		}
	}

	resp, err := h.statsSvc.GetHeatmap(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *statsHandler) isInTeam(r *http.Request, userID string) (bool, error) {
	ids, err := h.teamSvc.MemberIDs(r.Context(), middleware.UserID(r))
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}
