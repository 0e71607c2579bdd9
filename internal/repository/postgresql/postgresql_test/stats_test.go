package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/fieldtrack/fieldsales-backend-go/internal/repository/postgresql"
)

func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, 5, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateStatsTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"visits", "sheet_sales", "expenses", "attendance_events", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func seedRep(t *testing.T, db *database.DB, managerID string) string {
	t.Helper()
	ctx := context.Background()

	id := uuid.New().String()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, role, manager_id, is_active, created_at, updated_at)
		VALUES ($1, 'Test Rep', $2, 'rep', $3, TRUE, NOW(), NOW())
	`, id, id+"@example.com", managerID)
	require.NoError(t, err)
	return id
}

func seedManager(t *testing.T, db *database.DB) string {
	t.Helper()
	ctx := context.Background()

	id := uuid.New().String()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, role, is_active, created_at, updated_at)
		VALUES ($1, 'Test Manager', $2, 'manager', TRUE, NOW(), NOW())
	`, id, id+"@example.com")
	require.NoError(t, err)
	return id
}

func seedSheetSale(t *testing.T, db *database.DB, userID, saleDate, status string) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO sheet_sales (id, user_id, catalog, sheets_count, sale_date, status, created_at)
		VALUES ($1, $2, 'fine_decor', 10, $3, $4, NOW())
	`, uuid.New().String(), userID, saleDate, status)
	require.NoError(t, err)
}

// Pending and rejected submissions never mark a day active, matching the
// approved-only records the per-user listings read.
func TestStatsRepository_TeamRollup_ActiveDaysApprovedOnly(t *testing.T) {
	db := testDatabase(t)
	truncateStatsTables(t, db)

	managerID := seedManager(t, db)
	repID := seedRep(t, db, managerID)

	seedSheetSale(t, db, repID, "2025-06-02", "approved")
	seedSheetSale(t, db, repID, "2025-06-03", "pending")
	seedSheetSale(t, db, repID, "2025-06-04", "rejected")

	ctx := context.Background()
	rng := dates.Range{Start: dates.MustParse("2025-06-01"), End: dates.MustParse("2025-06-30")}

	statsRepo := postgresql.NewStatsRepository(db)
	rollups, err := statsRepo.TeamRollup(ctx, managerID, rng)
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, 1, rollups[0].ActiveDays)
	assert.Equal(t, 10, rollups[0].Sheets)

	daily, err := statsRepo.TeamDailyActivity(ctx, managerID, rng)
	require.NoError(t, err)
	require.Len(t, daily, 30)
	assert.Equal(t, 1, daily[1].ActiveCount) // June 2, approved
	assert.Equal(t, 0, daily[2].ActiveCount) // June 3, pending
	assert.Equal(t, 0, daily[3].ActiveCount) // June 4, rejected
}
