package attendance

import "context"

// DayRepository defines data access for materialized daily records.
//
// The store keeps the scalar fields of a DailyRecord (status, times,
// durations, punch count); the per-punch view list is derived on demand from
// the raw punch store and is not persisted.
type DayRepository interface {
	// UpsertDays writes recomputed records keyed on (employee_id, date).
	// Rows currently marked COMP are left untouched: recomputation never
	// downgrades an externally granted comp-off.
	UpsertDays(ctx context.Context, days []DailyRecord) error

	// Get returns the stored record for one employee-day.
	// Returns ErrDayNotFound when the day was never materialized.
	Get(ctx context.Context, employeeID int, date string) (DailyRecord, error)

	// ListRange returns stored records for [from, to] inclusive, ordered by
	// date ascending. Dates are YYYY-MM-DD.
	ListRange(ctx context.Context, employeeID int, from, to string) ([]DailyRecord, error)

	// ListCompDates returns the dates the employee currently has marked as
	// comp-off, ordered ascending.
	ListCompDates(ctx context.Context, employeeID int) ([]string, error)

	// MarkComp promotes an ABSENT day to COMP, zeroing times and durations.
	// Returns ErrCompRequiresAbsent when the day has any other status.
	MarkComp(ctx context.Context, employeeID int, date string) error

	// ClearComp reverts a COMP day to ABSENT so the next recompute can
	// restore the derived values. Returns ErrDayNotComp otherwise.
	ClearComp(ctx context.Context, employeeID int, date string) error

	// DeleteByEmployee drops all materialized days for an employee. Used
	// when the last punch of an employee is deleted.
	DeleteByEmployee(ctx context.Context, employeeID int) error
}
