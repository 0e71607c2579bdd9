package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/middleware"
	"github.com/fieldtrack/fieldsales-backend-go/internal/handler/http/response"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// ActivityHandler covers the rep-facing activity log: visits, sheet
// sales, expenses and attendance.
type ActivityHandler interface {
	LogVisit(w http.ResponseWriter, r *http.Request)
	ListVisits(w http.ResponseWriter, r *http.Request)
	SubmitSheetSale(w http.ResponseWriter, r *http.Request)
	ListSheetSales(w http.ResponseWriter, r *http.Request)
	SubmitExpense(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type activityHandler struct {
	visitSvc      visit.VisitService
	sheetSaleSvc  sheetsale.SheetSaleService
	expenseSvc    expense.ExpenseService
	attendanceSvc attendance.AttendanceService
	loc           *time.Location
}

func NewActivityHandler(
	visitSvc visit.VisitService,
	sheetSaleSvc sheetsale.SheetSaleService,
	expenseSvc expense.ExpenseService,
	attendanceSvc attendance.AttendanceService,
	loc *time.Location,
) ActivityHandler {
	return &activityHandler{
		visitSvc:      visitSvc,
		sheetSaleSvc:  sheetSaleSvc,
		expenseSvc:    expenseSvc,
		attendanceSvc: attendanceSvc,
		loc:           loc,
	}
}

// listRange resolves the list window, defaulting to the current month.
func (h *activityHandler) listRange(r *http.Request) (dates.Range, error) {
	kind, custom, err := parseRangeQuery(r)
	if err != nil {
		return dates.Range{}, err
	}
	return dates.ResolveRange(kind, dates.Today(h.loc), custom)
}

func (h *activityHandler) LogVisit(w http.ResponseWriter, r *http.Request) {
	var req visit.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.visitSvc.LogVisit(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Visit logged", resp)
}

func (h *activityHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	rng, err := h.listRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.visitSvc.ListMine(r.Context(), middleware.UserID(r), rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *activityHandler) SubmitSheetSale(w http.ResponseWriter, r *http.Request) {
	var req sheetsale.CreateSheetSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.sheetSaleSvc.Submit(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Sheet sale submitted for review", resp)
}

func (h *activityHandler) ListSheetSales(w http.ResponseWriter, r *http.Request) {
	rng, err := h.listRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.sheetSaleSvc.ListMine(r.Context(), middleware.UserID(r), rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *activityHandler) SubmitExpense(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.expenseSvc.Submit(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Expense submitted for review", resp)
}

func (h *activityHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	rng, err := h.listRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.expenseSvc.ListMine(r.Context(), middleware.UserID(r), rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *activityHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, h.attendanceSvc.CheckIn)
}

func (h *activityHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, h.attendanceSvc.CheckOut)
}

func (h *activityHandler) check(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.EventResponse, error),
) {
	var req attendance.CheckRequest
	// Location is optional; an empty body is fine.
	_ = json.NewDecoder(r.Body).Decode(&req)

	resp, err := fn(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded", resp)
}
