package response

import (
	"errors"
	"net/http"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/domain/report"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Ingestion errors: an empty result set means the wrong file was
	// uploaded, which is the caller's mistake, not ours.
	case errors.Is(err, punch.ErrNoValidRecords):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, directory.ErrNoValidRecords):
		UnprocessableEntity(w, err.Error())

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, punch.ErrPunchAlreadyExists):
		Conflict(w, "An identical punch already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance day not found")
	case errors.Is(err, attendance.ErrCompRequiresAbsent):
		Conflict(w, "Comp-off can only be granted on an absent day")
	case errors.Is(err, attendance.ErrDayNotComp):
		Conflict(w, "Day is not marked as comp-off")
	case errors.Is(err, attendance.ErrNoAttendanceData):
		NotFound(w, "No attendance data for employee")

	// Directory domain errors
	case errors.Is(err, directory.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in directory")

	// Report domain errors
	case errors.Is(err, report.ErrNoDataForMonth):
		NotFound(w, "No attendance data found for the requested month")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
