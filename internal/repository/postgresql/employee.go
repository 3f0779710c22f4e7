package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) directory.Repository {
	return &employeeRepository{db: db}
}

// UpsertBatch implements directory.Repository. Entries are applied in order,
// so a later entry for the same id wins, matching the parser's
// last-write-wins contract for snapshot exports.
func (r *employeeRepository) UpsertBatch(ctx context.Context, entries []directory.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_id, name, low_confidence)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE
		SET name = EXCLUDED.name,
		    low_confidence = EXCLUDED.low_confidence,
		    updated_at = NOW()
	`

	for _, entry := range entries {
		if _, err := q.Exec(ctx, query, entry.EmployeeID, entry.Name, entry.LowConfidence); err != nil {
			return fmt.Errorf("failed to upsert employee %d: %w", entry.EmployeeID, err)
		}
	}

	return nil
}

// GetName implements directory.Repository.
func (r *employeeRepository) GetName(ctx context.Context, employeeID int) (string, error) {
	q := GetQuerier(ctx, r.db)

	var name string
	err := q.QueryRow(ctx, `SELECT name FROM employees WHERE employee_id = $1`, employeeID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", directory.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to get employee name: %w", err)
	}

	return name, nil
}

// List implements directory.Repository.
func (r *employeeRepository) List(ctx context.Context) ([]directory.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id, name, low_confidence FROM employees ORDER BY employee_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var entries []directory.Entry
	for rows.Next() {
		var e directory.Entry
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.LowConfidence); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return entries, nil
}
