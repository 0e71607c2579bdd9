package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/stats"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepository{db: db}
}

// TeamDailyActivity returns one row per day of rng via generate_series, so
// days without any record still come back as zero rows. Activity counts the
// same records the per-user listings read: pending or rejected submissions
// never mark a day active.
func (r *statsRepository) TeamDailyActivity(ctx context.Context, managerID string, rng dates.Range) ([]stats.DailyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH team AS (
			SELECT id FROM users WHERE manager_id = $1 AND is_active = TRUE
		),
		days AS (
			SELECT d::date AS day FROM generate_series($2::date, $3::date, '1 day') d
		),
		active AS (
			SELECT visit_date AS day, user_id FROM visits WHERE user_id IN (SELECT id FROM team)
			UNION
			SELECT sale_date AS day, user_id FROM sheet_sales
			WHERE status = 'approved' AND user_id IN (SELECT id FROM team)
			UNION
			SELECT expense_date AS day, user_id FROM expenses
			WHERE status = 'approved' AND user_id IN (SELECT id FROM team)
			UNION
			SELECT event_date AS day, user_id FROM attendance_events
			WHERE event_type = 'check_in' AND user_id IN (SELECT id FROM team)
		)
		SELECT days.day,
		       COALESCE(COUNT(DISTINCT active.user_id), 0) AS active_count,
		       (SELECT COUNT(*) FROM team) AS total_count
		FROM days
		LEFT JOIN active ON active.day = days.day
		GROUP BY days.day
		ORDER BY days.day
	`
	rows, err := q.Query(ctx, query, managerID, rng.Start.String(), rng.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query team daily activity: %w", err)
	}
	defer rows.Close()

	var out []stats.DailyActivity
	for rows.Next() {
		var day time.Time
		var d stats.DailyActivity
		if err := rows.Scan(&day, &d.ActiveCount, &d.TotalCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		d.Date = dates.FromTime(day)
		d.IsInRange = true
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *statsRepository) RepDailyVisitCounts(ctx context.Context, userID string, rng dates.Range) ([]stats.DailyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d::date AS day,
		       COALESCE(COUNT(v.id), 0) AS visit_count
		FROM generate_series($2::date, $3::date, '1 day') d
		LEFT JOIN visits v ON v.visit_date = d::date AND v.user_id = $1
		GROUP BY d::date
		ORDER BY d::date
	`
	rows, err := q.Query(ctx, query, userID, rng.Start.String(), rng.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query rep daily visits: %w", err)
	}
	defer rows.Close()

	var out []stats.DailyActivity
	for rows.Next() {
		var day time.Time
		var d stats.DailyActivity
		if err := rows.Scan(&day, &d.VisitCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily visits: %w", err)
		}
		d.Date = dates.FromTime(day)
		d.IsInRange = true
		out = append(out, d)
	}
	return out, rows.Err()
}

// TeamRollup is one row per active rep, zero totals included, so the team
// table always lists the whole roster. Active days count approved sheet
// sales and expenses only, like the per-user listings.
func (r *statsRepository) TeamRollup(ctx context.Context, managerID string, rng dates.Range) ([]stats.RepRollup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.full_name,
		       COALESCE(v.visit_count, 0),
		       COALESCE(s.sheet_count, 0),
		       COALESCE(e.expense_total, 0),
		       COALESCE(a.active_days, 0)
		FROM users u
		LEFT JOIN (
			SELECT user_id, COUNT(*) AS visit_count
			FROM visits WHERE visit_date BETWEEN $2 AND $3
			GROUP BY user_id
		) v ON v.user_id = u.id
		LEFT JOIN (
			SELECT user_id, SUM(sheets_count) AS sheet_count
			FROM sheet_sales WHERE sale_date BETWEEN $2 AND $3 AND status = 'approved'
			GROUP BY user_id
		) s ON s.user_id = u.id
		LEFT JOIN (
			SELECT ex.user_id, SUM(i.amount) AS expense_total
			FROM expenses ex
			JOIN expense_items i ON i.expense_id = ex.id
			WHERE ex.expense_date BETWEEN $2 AND $3 AND ex.status = 'approved'
			GROUP BY ex.user_id
		) e ON e.user_id = u.id
		LEFT JOIN (
			SELECT user_id, COUNT(DISTINCT day) AS active_days
			FROM (
				SELECT user_id, visit_date AS day FROM visits WHERE visit_date BETWEEN $2 AND $3
				UNION
				SELECT user_id, sale_date AS day FROM sheet_sales
				WHERE sale_date BETWEEN $2 AND $3 AND status = 'approved'
				UNION
				SELECT user_id, expense_date AS day FROM expenses
				WHERE expense_date BETWEEN $2 AND $3 AND status = 'approved'
				UNION
				SELECT user_id, event_date AS day FROM attendance_events
				WHERE event_type = 'check_in' AND event_date BETWEEN $2 AND $3
			) activity
			GROUP BY user_id
		) a ON a.user_id = u.id
		WHERE u.manager_id = $1 AND u.is_active = TRUE
		ORDER BY u.full_name
	`
	rows, err := q.Query(ctx, query, managerID, rng.Start.String(), rng.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query team rollup: %w", err)
	}
	defer rows.Close()

	var out []stats.RepRollup
	for rows.Next() {
		var r stats.RepRollup
		if err := rows.Scan(&r.UserID, &r.UserName, &r.Visits, &r.Sheets, &r.Expenses, &r.ActiveDays); err != nil {
			return nil, fmt.Errorf("failed to scan team rollup: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
