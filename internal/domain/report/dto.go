package report

import (
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	Month    string                      `json:"month"` // YYYY-MM
	Settings attendance.SettingsOverride `json:"settings"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserReport is one employee's slice of a monthly report: the gapless run of
// daily records for the month plus their rollup.
type UserReport struct {
	EmployeeID int                      `json:"employee_id"`
	Name       string                   `json:"name"`
	Summary    attendance.Summary       `json:"summary"`
	Days       []attendance.DailyRecord `json:"days"`
}

// MonthlyReport is the assembled report object the rendering layer consumes.
type MonthlyReport struct {
	Month       string              `json:"month"`
	GeneratedAt time.Time           `json:"generated_at"`
	Settings    attendance.Settings `json:"settings"`
	Users       []UserReport        `json:"users"`
}
