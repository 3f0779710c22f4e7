package attendance

import (
	"math"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
)

// Summarize rolls a contiguous run of daily records for one employee up into
// a single summary. Working time, lateness and overtime accumulate from
// PRESENT days only; the average is over present days, not calendar days, so
// one 9-hour day in a 30-day month averages 9.0, not 0.3.
//
// An empty record list yields a zero-valued summary; there are no error
// conditions.
func Summarize(employeeID int, days []attendance.DailyRecord) attendance.Summary {
	summary := attendance.Summary{
		EmployeeID: employeeID,
		TotalDays:  len(days),
	}

	totalMinutes := 0
	for _, day := range days {
		switch day.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusIncomplete:
			summary.IncompleteDays++
		case attendance.StatusComp:
			summary.CompDays++
		}

		if day.Status != attendance.StatusPresent {
			continue
		}

		totalMinutes += day.WorkedMinutes
		if day.IsLate {
			summary.LateDays++
		}
		if day.IsEarlyOut {
			summary.EarlyOutDays++
		}
		if day.OvertimeMinutes > 0 {
			summary.OvertimeMinutes += day.OvertimeMinutes
		}
	}

	summary.TotalWorkingHours = totalMinutes / 60
	summary.TotalWorkingMinutes = totalMinutes % 60

	if summary.PresentDays > 0 {
		avg := float64(totalMinutes) / 60 / float64(summary.PresentDays)
		summary.AverageHoursPerDay = math.Round(avg*100) / 100
	}

	return summary
}
