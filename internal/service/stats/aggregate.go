package stats

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/attendance"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/expense"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/visit"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// Aggregate rolls one user's raw activity records for a window into
// AggregatedStats. It is pure: no I/O, no clock reads (the caller passes
// today), and the result does not depend on record order. Empty inputs
// produce all-zero stats, never an error.
func Aggregate(
	rng dates.Range,
	today dates.Date,
	visits []visit.Visit,
	sales []sheetsale.SheetSale,
	expenses []expense.Expense,
	events []attendance.Event,
) stats.AggregatedStats {
	return stats.AggregatedStats{
		Visits:     aggregateVisits(visits),
		Sheets:     aggregateSheets(sales),
		Expenses:   aggregateExpenses(expenses),
		Attendance: aggregateAttendance(rng, today, visits, sales, expenses, events),
	}
}

func aggregateVisits(visits []visit.Visit) stats.VisitStats {
	byType := make(map[account.Type]int, len(account.KnownTypes()))
	for _, t := range account.KnownTypes() {
		byType[t] = 0
	}

	for _, v := range visits {
		byType[account.ParseType(string(v.AccountType))]++
	}

	return stats.VisitStats{Total: len(visits), ByType: byType}
}

func aggregateSheets(sales []sheetsale.SheetSale) stats.SheetStats {
	byCatalog := make(map[sheetsale.Catalog]int, len(sheetsale.KnownCatalogs()))
	for _, c := range sheetsale.KnownCatalogs() {
		byCatalog[c] = 0
	}

	var total int
	for _, s := range sales {
		// Unknown catalogs count toward the total only
		// (sheetsale.UnknownCatalogCountTotalOnly).
		total += s.SheetsCount
		if catalog, known := sheetsale.ParseCatalog(string(s.Catalog)); known {
			byCatalog[catalog] += s.SheetsCount
		}
	}

	return stats.SheetStats{Total: total, ByCatalog: byCatalog}
}

func aggregateExpenses(expenses []expense.Expense) stats.ExpenseStats {
	byCategory := make(map[expense.Category]decimal.Decimal, len(expense.KnownCategories()))
	for _, c := range expense.KnownCategories() {
		byCategory[c] = decimal.Zero
	}

	total := decimal.Zero
	for _, e := range expenses {
		for _, item := range e.Items {
			cat := expense.ParseCategory(string(item.Category))
			total = total.Add(item.Amount)
			byCategory[cat] = byCategory[cat].Add(item.Amount)
		}
	}

	return stats.ExpenseStats{Total: total, ByCategory: byCategory}
}

// aggregateAttendance counts active days over the window clipped to today.
// A day is active when it has a check-in or any activity record. Future
// days are excluded from the denominator, not counted as absent.
func aggregateAttendance(
	rng dates.Range,
	today dates.Date,
	visits []visit.Visit,
	sales []sheetsale.SheetSale,
	expenses []expense.Expense,
	events []attendance.Event,
) stats.AttendanceStats {
	effective := rng.ClipTo(today)
	if effective.End.Before(effective.Start) {
		// The whole window lies in the future.
		return stats.AttendanceStats{}
	}

	activeDays := make(map[dates.Date]bool)
	markActive := func(d dates.Date) {
		if effective.Contains(d) {
			activeDays[d] = true
		}
	}

	for _, v := range visits {
		markActive(v.Date)
	}
	for _, s := range sales {
		markActive(s.Date)
	}
	for _, e := range expenses {
		markActive(e.Date)
	}
	for _, ev := range events {
		if ev.Type == attendance.EventCheckIn {
			markActive(ev.Date)
		}
	}

	total := effective.NumDays()
	present := len(activeDays)

	var percent float64
	if total > 0 {
		percent = float64(present) / float64(total) * 100
	}

	return stats.AttendanceStats{
		Present:        present,
		Absent:         total - present,
		Total:          total,
		PresentPercent: percent,
	}
}
