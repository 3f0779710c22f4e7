package punch

import (
	"context"
	"time"
)

// Repository defines data access for raw punch events.
type Repository interface {
	// BulkInsert stores a batch of events, skipping exact duplicates
	// (same employee and instant). Returns the number actually inserted.
	BulkInsert(ctx context.Context, events []Event) (int, error)

	// Add stores a single manually entered event.
	Add(ctx context.Context, event Event) error

	// Delete removes the event matching employee and instant exactly.
	Delete(ctx context.Context, employeeID int, timestamp time.Time) error

	// ListByEmployee returns all stored events for one employee, ordered
	// by instant ascending.
	ListByEmployee(ctx context.Context, employeeID int) ([]Event, error)

	// DistinctEmployeeIDs returns every employee id with at least one
	// stored event, ascending.
	DistinctEmployeeIDs(ctx context.Context) ([]int, error)
}
