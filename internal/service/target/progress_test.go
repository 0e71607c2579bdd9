package target

import (
	"testing"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThresholds = Thresholds{Near: 80, Complete: 100}

func statsWith(visitsByType map[account.Type]int, sheetsByCatalog map[sheetsale.Catalog]int) stats.AggregatedStats {
	s := stats.AggregatedStats{}
	s.Visits.ByType = visitsByType
	s.Sheets.ByCatalog = sheetsByCatalog
	return s
}

func findCategory(t *testing.T, rows []target.Progress, category string) target.Progress {
	t.Helper()
	for _, p := range rows {
		if p.Category == category {
			return p
		}
	}
	t.Fatalf("category %q not in report", category)
	return target.Progress{}
}

func TestCalculateProgress_NilTarget(t *testing.T) {
	t.Parallel()

	s := statsWith(map[account.Type]int{account.TypeDistributor: 7}, nil)
	report := CalculateProgress("2024-06", s, nil, testThresholds)

	p := findCategory(t, report.ByAccountType, "distributor")
	assert.Equal(t, 7, p.Achieved)
	assert.False(t, p.HasTarget)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, target.StateNormal, p.State)

	assert.False(t, report.Total.HasTarget)
	assert.Equal(t, 0, report.Total.Percentage)
}

func TestCalculateProgress_ZeroAchievedAgainstRealTarget(t *testing.T) {
	t.Parallel()

	// 0 of 500 is a real 0%, not "no target".
	tgt := &target.Target{ByCatalog: map[sheetsale.Catalog]int{sheetsale.CatalogFineDecor: 500}}
	report := CalculateProgress("2024-06", statsWith(nil, nil), tgt, testThresholds)

	p := findCategory(t, report.ByCatalog, "fine_decor")
	assert.True(t, p.HasTarget)
	assert.Equal(t, 500, p.Target)
	assert.Equal(t, 0, p.Achieved)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, target.StateNormal, p.State)
}

func TestCalculateProgress_OverAchievementIsNotClamped(t *testing.T) {
	t.Parallel()

	tgt := &target.Target{ByAccountType: map[account.Type]int{account.TypeDealer: 100}}
	s := statsWith(map[account.Type]int{account.TypeDealer: 150}, nil)

	report := CalculateProgress("2024-06", s, tgt, testThresholds)

	p := findCategory(t, report.ByAccountType, "dealer")
	assert.Equal(t, 150, p.Percentage)
	assert.Equal(t, target.StateComplete, p.State)
}

func TestCalculateProgress_States(t *testing.T) {
	t.Parallel()

	tgt := &target.Target{ByAccountType: map[account.Type]int{
		account.TypeDistributor: 100,
		account.TypeDealer:      100,
		account.TypeArchitect:   100,
	}}
	s := statsWith(map[account.Type]int{
		account.TypeDistributor: 100,
		account.TypeDealer:      85,
		account.TypeArchitect:   40,
	}, nil)

	report := CalculateProgress("2024-06", s, tgt, testThresholds)

	assert.Equal(t, target.StateComplete, findCategory(t, report.ByAccountType, "distributor").State)
	assert.Equal(t, target.StateNearTarget, findCategory(t, report.ByAccountType, "dealer").State)
	assert.Equal(t, target.StateNormal, findCategory(t, report.ByAccountType, "architect").State)
}

func TestCalculateProgress_NearBandLowerBoundInclusive(t *testing.T) {
	t.Parallel()

	tgt := &target.Target{ByAccountType: map[account.Type]int{account.TypeDealer: 100}}

	s := statsWith(map[account.Type]int{account.TypeDealer: 80}, nil)
	report := CalculateProgress("2024-06", s, tgt, testThresholds)
	assert.Equal(t, target.StateNearTarget, findCategory(t, report.ByAccountType, "dealer").State)

	s = statsWith(map[account.Type]int{account.TypeDealer: 79}, nil)
	report = CalculateProgress("2024-06", s, tgt, testThresholds)
	assert.Equal(t, target.StateNormal, findCategory(t, report.ByAccountType, "dealer").State)
}

func TestCalculateProgress_ZeroTargetValueIsNotATarget(t *testing.T) {
	t.Parallel()

	// An explicit zero goal can never divide; it reads as normal with 0%.
	tgt := &target.Target{ByAccountType: map[account.Type]int{account.TypeOEM: 0}}
	s := statsWith(map[account.Type]int{account.TypeOEM: 12}, nil)

	report := CalculateProgress("2024-06", s, tgt, testThresholds)

	p := findCategory(t, report.ByAccountType, "oem")
	assert.True(t, p.HasTarget)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, target.StateNormal, p.State)
}

func TestCalculateProgress_PercentageRounds(t *testing.T) {
	t.Parallel()

	tgt := &target.Target{ByAccountType: map[account.Type]int{account.TypeDealer: 3}}
	s := statsWith(map[account.Type]int{account.TypeDealer: 1}, nil)

	report := CalculateProgress("2024-06", s, tgt, testThresholds)
	assert.Equal(t, 33, findCategory(t, report.ByAccountType, "dealer").Percentage)

	s = statsWith(map[account.Type]int{account.TypeDealer: 2}, nil)
	report = CalculateProgress("2024-06", s, tgt, testThresholds)
	assert.Equal(t, 67, findCategory(t, report.ByAccountType, "dealer").Percentage)
}

func TestCalculateProgress_TotalCoversTargetedCategoriesOnly(t *testing.T) {
	t.Parallel()

	tgt := &target.Target{
		ByAccountType: map[account.Type]int{account.TypeDistributor: 10},
		ByCatalog:     map[sheetsale.Catalog]int{sheetsale.CatalogHeritage: 40},
	}
	s := statsWith(
		// The dealer visits have no target and must stay out of the total.
		map[account.Type]int{account.TypeDistributor: 5, account.TypeDealer: 99},
		map[sheetsale.Catalog]int{sheetsale.CatalogHeritage: 40},
	)

	report := CalculateProgress("2024-06", s, tgt, testThresholds)

	require.True(t, report.Total.HasTarget)
	assert.Equal(t, 45, report.Total.Achieved)
	assert.Equal(t, 50, report.Total.Target)
	assert.Equal(t, 90, report.Total.Percentage)
	assert.Equal(t, target.StateNearTarget, report.Total.State)
	assert.Equal(t, "2024-06", report.Month)
}
