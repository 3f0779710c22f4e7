package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/domain/report"
	attendanceService "github.com/punchlab/punchclock-backend-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	punchRepo    punch.Repository
	employeeRepo directory.Repository
	dayRepo      attendance.DayRepository

	settings attendance.Settings
	loc      *time.Location
}

func NewReportService(
	punchRepo punch.Repository,
	employeeRepo directory.Repository,
	dayRepo attendance.DayRepository,
	settings attendance.Settings,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		dayRepo:      dayRepo,
		settings:     settings,
		loc:          loc,
	}
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	settings := req.Settings.Apply(s.settings)
	if err := settings.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	ids, err := s.punchRepo.DistinctEmployeeIDs(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list employees with punches: %w", err)
	}

	result := report.MonthlyReport{
		Month:       req.Month,
		GeneratedAt: time.Now().UTC(),
		Settings:    settings,
	}

	for _, id := range ids {
		user, err := s.buildUserMonth(ctx, id, req.Month, settings)
		if err != nil {
			// An employee whose punch span does not touch the requested
			// month simply has no rows in this report.
			if errors.Is(err, attendance.ErrNoAttendanceData) {
				continue
			}
			return report.MonthlyReport{}, err
		}
		result.Users = append(result.Users, user)
	}

	if len(result.Users) == 0 {
		return report.MonthlyReport{}, report.ErrNoDataForMonth
	}

	return result, nil
}

// EmployeeMonth implements report.ReportService.
func (s *ReportServiceImpl) EmployeeMonth(ctx context.Context, employeeID int, req report.MonthlyReportRequest) (report.UserReport, error) {
	if err := req.Validate(); err != nil {
		return report.UserReport{}, err
	}

	settings := req.Settings.Apply(s.settings)
	if err := settings.Validate(); err != nil {
		return report.UserReport{}, err
	}

	return s.buildUserMonth(ctx, employeeID, req.Month, settings)
}

// buildUserMonth recomputes one employee's calendar from stored punches,
// slices out the requested month and overlays comp-off overrides. Derivation
// is rerun per request rather than read from the materialized rows so that
// per-request settings overrides take effect.
func (s *ReportServiceImpl) buildUserMonth(ctx context.Context, employeeID int, month string, settings attendance.Settings) (report.UserReport, error) {
	events, err := s.punchRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return report.UserReport{}, fmt.Errorf("failed to load punches for employee %d: %w", employeeID, err)
	}
	if len(events) == 0 {
		return report.UserReport{}, attendance.ErrNoAttendanceData
	}

	calendar := attendanceService.ComputeCalendar(employeeID, events, settings, s.loc)

	var days []attendance.DailyRecord
	for _, d := range calendar {
		if strings.HasPrefix(d.Date, month+"-") {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return report.UserReport{}, attendance.ErrNoAttendanceData
	}

	compDates, err := s.dayRepo.ListCompDates(ctx, employeeID)
	if err != nil {
		return report.UserReport{}, fmt.Errorf("failed to load comp-off dates for employee %d: %w", employeeID, err)
	}
	compSet := make(map[string]bool, len(compDates))
	for _, d := range compDates {
		compSet[d] = true
	}

	// A comp-off is a terminal override until explicitly cleared: it masks
	// whatever the derivation says about that day.
	for i := range days {
		if compSet[days[i].Date] {
			days[i] = attendance.NewCompDay(employeeID, days[i].Date)
		}
	}

	return report.UserReport{
		EmployeeID: employeeID,
		Name:       s.displayName(ctx, employeeID),
		Summary:    attendanceService.Summarize(employeeID, days),
		Days:       days,
	}, nil
}

func (s *ReportServiceImpl) displayName(ctx context.Context, employeeID int) string {
	name, err := s.employeeRepo.GetName(ctx, employeeID)
	if err != nil || name == "" {
		// Punch logs regularly arrive before the directory export does.
		return fmt.Sprintf("Employee %d", employeeID)
	}
	return name
}
