package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
)

func presentDay(date string, worked int, late, earlyOut bool, overtime int) attendance.DailyRecord {
	return attendance.DailyRecord{
		EmployeeID:      5,
		Date:            date,
		Status:          attendance.StatusPresent,
		WorkedMinutes:   worked,
		IsLate:          late,
		IsEarlyOut:      earlyOut,
		OvertimeMinutes: overtime,
	}
}

func TestSummarize_MixedMonth(t *testing.T) {
	days := []attendance.DailyRecord{
		presentDay("2025-12-01", 510, false, false, 0),
		presentDay("2025-12-02", 600, true, false, 60),
		{EmployeeID: 5, Date: "2025-12-03", Status: attendance.StatusAbsent},
		{EmployeeID: 5, Date: "2025-12-04", Status: attendance.StatusIncomplete},
		{EmployeeID: 5, Date: "2025-12-05", Status: attendance.StatusComp},
		presentDay("2025-12-06", 480, false, true, 0),
	}

	s := Summarize(5, days)

	assert.Equal(t, 5, s.EmployeeID)
	assert.Equal(t, 6, s.TotalDays)
	assert.Equal(t, 3, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.IncompleteDays)
	assert.Equal(t, 1, s.CompDays)

	// 510 + 600 + 480 = 1590 minutes = 26h30m
	assert.Equal(t, 26, s.TotalWorkingHours)
	assert.Equal(t, 30, s.TotalWorkingMinutes)

	// 1590 / 60 / 3 present days = 8.83
	assert.InDelta(t, 8.83, s.AverageHoursPerDay, 0.001)

	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.EarlyOutDays)
	assert.Equal(t, 60, s.OvertimeMinutes)
}

func TestSummarize_AverageOverPresentDaysOnly(t *testing.T) {
	// One 9-hour day in an otherwise absent month averages 9.0, not 0.3.
	days := []attendance.DailyRecord{presentDay("2025-12-01", 540, false, false, 0)}
	for d := 2; d <= 30; d++ {
		days = append(days, attendance.DailyRecord{
			EmployeeID: 5,
			Status:     attendance.StatusAbsent,
		})
	}

	s := Summarize(5, days)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 29, s.AbsentDays)
	assert.InDelta(t, 9.0, s.AverageHoursPerDay, 0.001)
}

func TestSummarize_NoPresentDays(t *testing.T) {
	days := []attendance.DailyRecord{
		{EmployeeID: 5, Status: attendance.StatusAbsent},
		{EmployeeID: 5, Status: attendance.StatusIncomplete},
	}

	s := Summarize(5, days)
	assert.Equal(t, 0, s.PresentDays)
	assert.Zero(t, s.AverageHoursPerDay, "no division by zero on zero present days")
	assert.Zero(t, s.TotalWorkingHours)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(5, nil)
	assert.Equal(t, attendance.Summary{EmployeeID: 5}, s)
}

func TestSummarize_IncompleteDayMinutesIgnored(t *testing.T) {
	// An incomplete day carries no closed pairs, but even if it did, only
	// PRESENT days feed the totals.
	days := []attendance.DailyRecord{
		{EmployeeID: 5, Status: attendance.StatusIncomplete, WorkedMinutes: 120, IsLate: true},
		presentDay("2025-12-02", 60, false, false, 0),
	}

	s := Summarize(5, days)
	assert.Equal(t, 1, s.TotalWorkingHours)
	assert.Equal(t, 0, s.TotalWorkingMinutes)
	assert.Equal(t, 0, s.LateDays)
}
