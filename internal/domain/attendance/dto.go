package attendance

import (
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ManualPunchRequest adds or deletes a single punch by hand, for fixing a
// missed or bogus swipe. The timestamp is civil wall-clock, same digits the
// device would have written to its log.
type ManualPunchRequest struct {
	EmployeeID int    `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // "2006-01-02 15:04:05"
	VerifyType *int   `json:"verify_type,omitempty"`
}

const manualPunchLayout = "2006-01-02 15:04:05"

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, err := time.Parse(manualPunchLayout, r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be in YYYY-MM-DD HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CivilTime parses the request timestamp in the given civil location.
// Validate must have passed.
func (r *ManualPunchRequest) CivilTime(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(manualPunchLayout, r.Timestamp, loc)
	return t
}

// ImportResult reports what a punch-log upload did.
type ImportResult struct {
	TotalEvents  int `json:"total_events"`
	NewEvents    int `json:"new_events"`
	Employees    int `json:"employees"`
	DaysComputed int `json:"days_computed"`
}

// DirectoryImportResult reports what a name-directory upload did.
type DirectoryImportResult struct {
	Records       int `json:"records"`
	LowConfidence int `json:"low_confidence"`
}
