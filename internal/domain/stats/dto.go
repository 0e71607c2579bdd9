package stats

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// VisitStats groups a window's visits by account type. Unknown types are
// folded into account.TypeOther before counting.
type VisitStats struct {
	Total  int                  `json:"total"`
	ByType map[account.Type]int `json:"by_type"`
}

// SheetStats sums sheet counts. Sales against catalogs outside the known
// set contribute to Total but not to ByCatalog
// (sheetsale.UnknownCatalogCountTotalOnly).
type SheetStats struct {
	Total     int                       `json:"total"`
	ByCatalog map[sheetsale.Catalog]int `json:"by_catalog"`
}

// ExpenseStats sums every line item of every expense record.
type ExpenseStats struct {
	Total      decimal.Decimal                      `json:"total"`
	ByCategory map[expense.Category]decimal.Decimal `json:"by_category"`
}

// AttendanceStats counts active days inside the window clipped to today.
// Future days appear in neither Present nor Total.
type AttendanceStats struct {
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Total          int     `json:"total"`
	PresentPercent float64 `json:"present_percent"`
}

// AggregatedStats is the full per-user rollup for one (user, range) query.
// It is derived fresh on every fetch and never persisted.
type AggregatedStats struct {
	Visits     VisitStats      `json:"visits"`
	Sheets     SheetStats      `json:"sheets"`
	Expenses   ExpenseStats    `json:"expenses"`
	Attendance AttendanceStats `json:"attendance"`
}

// UserStatsResponse echoes the resolved range so clients can discard
// responses that no longer match their current selection.
type UserStatsResponse struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name,omitempty"`
	Range    dates.Range     `json:"range"`
	Stats    AggregatedStats `json:"stats"`
}

// DailyActivity is one calendar day's activity volume. For the team view
// ActiveCount/TotalCount hold reps-active-of-total; for a single rep
// VisitCount holds that day's visits.
type DailyActivity struct {
	Date        dates.Date `json:"date"`
	VisitCount  int        `json:"visit_count"`
	ActiveCount int        `json:"active_count"`
	TotalCount  int        `json:"total_count"`
	IsInRange   bool       `json:"is_in_range"`
}

// RepRollup is one row of the team stats table.
type RepRollup struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Visits     int             `json:"visits"`
	Sheets     int             `json:"sheets"`
	Expenses   decimal.Decimal `json:"expenses"`
	ActiveDays int             `json:"active_days"`
}

// TeamStatsResponse is the manager dashboard payload.
type TeamStatsResponse struct {
	Range         dates.Range     `json:"range"`
	TeamSize      int             `json:"team_size"`
	Visits        int             `json:"visits"`
	Sheets        int             `json:"sheets"`
	Expenses      decimal.Decimal `json:"expenses"`
	Reps          []RepRollup     `json:"reps"`
	DailyActivity []DailyActivity `json:"daily_activity,omitempty"`
}
