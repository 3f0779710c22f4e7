package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/database"
)

type attendanceDayRepository struct {
	db *database.DB
}

func NewAttendanceDayRepository(db *database.DB) attendance.DayRepository {
	return &attendanceDayRepository{db: db}
}

// UpsertDays implements attendance.DayRepository. The conflict update is
// guarded on status so a stored COMP row survives recomputation; comp-off is
// a terminal override until explicitly cleared.
func (r *attendanceDayRepository) UpsertDays(ctx context.Context, days []attendance.DailyRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (
			id, employee_id, date, status, first_in, last_out,
			worked_minutes, punch_count, is_late, is_early_out, overtime_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
		    first_in = EXCLUDED.first_in,
		    last_out = EXCLUDED.last_out,
		    worked_minutes = EXCLUDED.worked_minutes,
		    punch_count = EXCLUDED.punch_count,
		    is_late = EXCLUDED.is_late,
		    is_early_out = EXCLUDED.is_early_out,
		    overtime_minutes = EXCLUDED.overtime_minutes,
		    updated_at = NOW()
		WHERE attendance_days.status <> 'COMP'
	`

	for _, day := range days {
		_, err := q.Exec(ctx, query,
			uuid.NewString(),
			day.EmployeeID,
			day.Date,
			day.Status,
			day.FirstIn,
			day.LastOut,
			day.WorkedMinutes,
			day.PunchCount,
			day.IsLate,
			day.IsEarlyOut,
			day.OvertimeMinutes,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert attendance day %s for employee %d: %w", day.Date, day.EmployeeID, err)
		}
	}

	return nil
}

const dayColumns = `
	employee_id, date, status, first_in, last_out,
	worked_minutes, punch_count, is_late, is_early_out, overtime_minutes
`

func scanDay(row pgx.Row) (attendance.DailyRecord, error) {
	var day attendance.DailyRecord
	err := row.Scan(
		&day.EmployeeID, &day.Date, &day.Status, &day.FirstIn, &day.LastOut,
		&day.WorkedMinutes, &day.PunchCount, &day.IsLate, &day.IsEarlyOut, &day.OvertimeMinutes,
	)
	if err != nil {
		return attendance.DailyRecord{}, err
	}
	day.TotalHours = day.WorkedMinutes / 60
	day.TotalMinutes = day.WorkedMinutes % 60
	return day, nil
}

// Get implements attendance.DayRepository.
func (r *attendanceDayRepository) Get(ctx context.Context, employeeID int, date string) (attendance.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayColumns + ` FROM attendance_days WHERE employee_id = $1 AND date = $2`

	day, err := scanDay(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailyRecord{}, attendance.ErrDayNotFound
		}
		return attendance.DailyRecord{}, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return day, nil
}

// ListRange implements attendance.DayRepository.
func (r *attendanceDayRepository) ListRange(ctx context.Context, employeeID int, from, to string) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.DailyRecord
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day row: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance day rows: %w", err)
	}

	return days, nil
}

// ListCompDates implements attendance.DayRepository.
func (r *attendanceDayRepository) ListCompDates(ctx context.Context, employeeID int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT date FROM attendance_days WHERE employee_id = $1 AND status = $2 ORDER BY date ASC`,
		employeeID, attendance.StatusComp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comp dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan comp date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comp dates: %w", err)
	}

	return dates, nil
}

// MarkComp implements attendance.DayRepository. The transition is only legal
// out of ABSENT; the status guard in the UPDATE enforces it atomically.
func (r *attendanceDayRepository) MarkComp(ctx context.Context, employeeID int, date string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET status = $3,
		    first_in = NULL,
		    last_out = NULL,
		    worked_minutes = 0,
		    punch_count = 0,
		    is_late = FALSE,
		    is_early_out = FALSE,
		    overtime_minutes = 0,
		    updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND status = $4
	`

	tag, err := q.Exec(ctx, query, employeeID, date, attendance.StatusComp, attendance.StatusAbsent)
	if err != nil {
		return fmt.Errorf("failed to mark comp-off: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing day from a day in the wrong status.
		if _, err := r.Get(ctx, employeeID, date); err != nil {
			return err
		}
		return attendance.ErrCompRequiresAbsent
	}

	return nil
}

// ClearComp implements attendance.DayRepository. The row reverts to ABSENT;
// the caller recomputes to restore derived values for days that had punches.
func (r *attendanceDayRepository) ClearComp(ctx context.Context, employeeID int, date string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET status = $3, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND status = $4
	`

	tag, err := q.Exec(ctx, query, employeeID, date, attendance.StatusAbsent, attendance.StatusComp)
	if err != nil {
		return fmt.Errorf("failed to clear comp-off: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, employeeID, date); err != nil {
			return err
		}
		return attendance.ErrDayNotComp
	}

	return nil
}

// DeleteByEmployee implements attendance.DayRepository.
func (r *attendanceDayRepository) DeleteByEmployee(ctx context.Context, employeeID int) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_days WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance days for employee %d: %w", employeeID, err)
	}

	return nil
}
