package attendance

import (
	"context"
	"io"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ImportPunchLog stream-parses an uploaded punch log, stores the events
	// and recomputes the calendar for every affected employee.
	// Returns punch.ErrNoValidRecords when nothing usable was parsed.
	ImportPunchLog(ctx context.Context, r io.Reader) (ImportResult, error)

	// ImportDirectory parses a binary name-directory export and upserts the
	// id-to-name mapping. Returns directory.ErrNoValidRecords when the blob
	// yields nothing.
	ImportDirectory(ctx context.Context, blob []byte) (DirectoryImportResult, error)

	// RecomputeEmployee rebuilds the full calendar for one employee from
	// stored punches and persists it.
	RecomputeEmployee(ctx context.Context, employeeID int) ([]DailyRecord, error)

	// RecomputeAll rebuilds every employee's calendar. Returns the number of
	// employees recomputed.
	RecomputeAll(ctx context.Context) (int, error)

	// MarkCompOff grants a paid day off on an ABSENT day.
	MarkCompOff(ctx context.Context, employeeID int, date string) (DailyRecord, error)

	// ClearCompOff removes a comp-off override and restores derived values.
	ClearCompOff(ctx context.Context, employeeID int, date string) (DailyRecord, error)

	// AddManualPunch inserts a hand-entered punch and returns the recomputed
	// day it falls on.
	AddManualPunch(ctx context.Context, req ManualPunchRequest) (DailyRecord, error)

	// DeleteManualPunch removes a punch and returns the recomputed day.
	DeleteManualPunch(ctx context.Context, req ManualPunchRequest) (DailyRecord, error)
}
