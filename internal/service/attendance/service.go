package attendance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/database"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
	"github.com/punchlab/punchclock-backend-go/internal/repository/postgresql"
	dirparser "github.com/punchlab/punchclock-backend-go/internal/service/directory"
	"github.com/punchlab/punchclock-backend-go/internal/service/punchlog"
)

type AttendanceServiceImpl struct {
	db           *database.DB
	punchRepo    punch.Repository
	employeeRepo directory.Repository
	dayRepo      attendance.DayRepository

	parser    *punchlog.Parser
	dirParser *dirparser.Parser

	// Defaults used for persisted recomputes; report requests may override
	// settings per call without touching stored rows.
	settings attendance.Settings
	loc      *time.Location
}

func NewAttendanceService(
	db *database.DB,
	punchRepo punch.Repository,
	employeeRepo directory.Repository,
	dayRepo attendance.DayRepository,
	parser *punchlog.Parser,
	dirParser *dirparser.Parser,
	settings attendance.Settings,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:           db,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		dayRepo:      dayRepo,
		parser:       parser,
		dirParser:    dirParser,
		settings:     settings,
		loc:          loc,
	}
}

// ImportPunchLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ImportPunchLog(ctx context.Context, r io.Reader) (attendance.ImportResult, error) {
	events, err := s.parser.Parse(ctx, r)
	if err != nil {
		return attendance.ImportResult{}, err
	}

	affected := make(map[int]bool)
	for _, ev := range events {
		affected[ev.EmployeeID] = true
	}

	var result attendance.ImportResult
	result.TotalEvents = len(events)
	result.Employees = len(affected)

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		inserted, err := s.punchRepo.BulkInsert(ctx, events)
		if err != nil {
			return fmt.Errorf("failed to store punch events: %w", err)
		}
		result.NewEvents = inserted

		for employeeID := range affected {
			days, err := s.recompute(ctx, employeeID)
			if err != nil {
				return err
			}
			result.DaysComputed += len(days)
		}
		return nil
	})
	if err != nil {
		return attendance.ImportResult{}, err
	}

	return result, nil
}

// ImportDirectory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ImportDirectory(ctx context.Context, blob []byte) (attendance.DirectoryImportResult, error) {
	entries, err := s.dirParser.Parse(blob)
	if err != nil {
		return attendance.DirectoryImportResult{}, err
	}

	if err := s.employeeRepo.UpsertBatch(ctx, entries); err != nil {
		return attendance.DirectoryImportResult{}, fmt.Errorf("failed to store directory entries: %w", err)
	}

	result := attendance.DirectoryImportResult{Records: len(entries)}
	for _, e := range entries {
		if e.LowConfidence {
			result.LowConfidence++
		}
	}
	return result, nil
}

// RecomputeEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecomputeEmployee(ctx context.Context, employeeID int) ([]attendance.DailyRecord, error) {
	days, err := s.recompute(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if days == nil {
		return nil, attendance.ErrNoAttendanceData
	}
	return days, nil
}

// RecomputeAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := s.punchRepo.DistinctEmployeeIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees with punches: %w", err)
	}

	for _, id := range ids {
		if _, err := s.recompute(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

// MarkCompOff implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkCompOff(ctx context.Context, employeeID int, date string) (attendance.DailyRecord, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DailyRecord{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	if err := s.dayRepo.MarkComp(ctx, employeeID, date); err != nil {
		return attendance.DailyRecord{}, err
	}

	return attendance.NewCompDay(employeeID, date), nil
}

// ClearCompOff implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearCompOff(ctx context.Context, employeeID int, date string) (attendance.DailyRecord, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DailyRecord{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	if err := s.dayRepo.ClearComp(ctx, employeeID, date); err != nil {
		return attendance.DailyRecord{}, err
	}

	// Recompute restores the derived values the override was masking.
	days, err := s.recompute(ctx, employeeID)
	if err != nil {
		return attendance.DailyRecord{}, err
	}
	return dayForDate(days, employeeID, date), nil
}

// AddManualPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AddManualPunch(ctx context.Context, req attendance.ManualPunchRequest) (attendance.DailyRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyRecord{}, err
	}

	verifyType := punch.VerifyFingerprint
	if req.VerifyType != nil {
		verifyType = *req.VerifyType
	}

	ts := req.CivilTime(s.loc)
	event := punch.Event{
		EmployeeID: req.EmployeeID,
		Timestamp:  ts,
		VerifyType: verifyType,
		WorkCode:   1,
	}

	var days []attendance.DailyRecord
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.punchRepo.Add(ctx, event); err != nil {
			return err
		}
		var err error
		days, err = s.recompute(ctx, req.EmployeeID)
		return err
	})
	if err != nil {
		return attendance.DailyRecord{}, err
	}

	return dayForDate(days, req.EmployeeID, ts.In(s.loc).Format(civiltime.DateLayout)), nil
}

// DeleteManualPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteManualPunch(ctx context.Context, req attendance.ManualPunchRequest) (attendance.DailyRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyRecord{}, err
	}

	ts := req.CivilTime(s.loc)

	var days []attendance.DailyRecord
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.punchRepo.Delete(ctx, req.EmployeeID, ts); err != nil {
			return err
		}
		var err error
		days, err = s.recompute(ctx, req.EmployeeID)
		return err
	})
	if err != nil {
		return attendance.DailyRecord{}, err
	}

	return dayForDate(days, req.EmployeeID, ts.In(s.loc).Format(civiltime.DateLayout)), nil
}

// recompute rebuilds and persists the calendar for one employee from stored
// punches. With no punches left, the materialized days are dropped and nil is
// returned. The upsert never downgrades a stored COMP day.
func (s *AttendanceServiceImpl) recompute(ctx context.Context, employeeID int) ([]attendance.DailyRecord, error) {
	events, err := s.punchRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load punches for employee %d: %w", employeeID, err)
	}

	if len(events) == 0 {
		if err := s.dayRepo.DeleteByEmployee(ctx, employeeID); err != nil {
			return nil, fmt.Errorf("failed to drop attendance days for employee %d: %w", employeeID, err)
		}
		return nil, nil
	}

	days := ComputeCalendar(employeeID, events, s.settings, s.loc)
	if err := s.dayRepo.UpsertDays(ctx, days); err != nil {
		return nil, fmt.Errorf("failed to store attendance days for employee %d: %w", employeeID, err)
	}
	return days, nil
}

// dayForDate picks the record for date out of a computed calendar. A date
// outside the calendar span (e.g. after the employee's last punch was
// deleted) renders as a bare ABSENT day.
func dayForDate(days []attendance.DailyRecord, employeeID int, date string) attendance.DailyRecord {
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	return attendance.DailyRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusAbsent,
		Punches:    []attendance.PunchView{},
	}
}
