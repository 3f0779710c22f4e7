package directory

import "context"

// Repository defines data access for the employee name directory.
type Repository interface {
	// UpsertBatch stores entries in order; a later entry with the same
	// employee id overwrites an earlier one (directory exports are full
	// snapshots, not deltas).
	UpsertBatch(ctx context.Context, entries []Entry) error

	// GetName returns the display name for an employee id.
	// Returns ErrEmployeeNotFound when the id has never been imported.
	GetName(ctx context.Context, employeeID int) (string, error)

	// List returns all known entries ordered by employee id.
	List(ctx context.Context) ([]Entry, error)
}
