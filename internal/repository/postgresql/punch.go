package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.Repository {
	return &punchRepository{db: db}
}

// BulkInsert implements punch.Repository. Re-uploading an overlapping log is
// routine, so exact duplicates (same employee and instant) are skipped rather
// than rejected.
func (r *punchRepository) BulkInsert(ctx context.Context, events []punch.Event) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, punched_at, verify_type, in_out_flag, work_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, punched_at) DO NOTHING
	`

	inserted := 0
	for _, ev := range events {
		tag, err := q.Exec(ctx, query,
			uuid.NewString(),
			ev.EmployeeID,
			ev.Timestamp,
			ev.VerifyType,
			ev.InOutFlag,
			ev.WorkCode,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert punch for employee %d: %w", ev.EmployeeID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// Add implements punch.Repository.
func (r *punchRepository) Add(ctx context.Context, event punch.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, punched_at, verify_type, in_out_flag, work_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, punched_at) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		uuid.NewString(),
		event.EmployeeID,
		event.Timestamp,
		event.VerifyType,
		event.InOutFlag,
		event.WorkCode,
	)
	if err != nil {
		return fmt.Errorf("failed to add punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchAlreadyExists
	}

	return nil
}

// Delete implements punch.Repository.
func (r *punchRepository) Delete(ctx context.Context, employeeID int, timestamp time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM punches WHERE employee_id = $1 AND punched_at = $2`,
		employeeID, timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// ListByEmployee implements punch.Repository.
func (r *punchRepository) ListByEmployee(ctx context.Context, employeeID int) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, punched_at, verify_type, in_out_flag, work_code
		FROM punches
		WHERE employee_id = $1
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var ev punch.Event
		if err := rows.Scan(&ev.EmployeeID, &ev.Timestamp, &ev.VerifyType, &ev.InOutFlag, &ev.WorkCode); err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch rows: %w", err)
	}

	return events, nil
}

// DistinctEmployeeIDs implements punch.Repository.
func (r *punchRepository) DistinctEmployeeIDs(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT employee_id FROM punches ORDER BY employee_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct employee ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee ids: %w", err)
	}

	return ids, nil
}
