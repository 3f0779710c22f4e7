package report

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/domain/report"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
)

// ===== in-memory fakes =====

type fakePunchRepo struct {
	events map[int][]punch.Event
}

func (f *fakePunchRepo) BulkInsert(_ context.Context, events []punch.Event) (int, error) {
	for _, ev := range events {
		f.events[ev.EmployeeID] = append(f.events[ev.EmployeeID], ev)
	}
	return len(events), nil
}

func (f *fakePunchRepo) Add(_ context.Context, ev punch.Event) error {
	f.events[ev.EmployeeID] = append(f.events[ev.EmployeeID], ev)
	return nil
}

func (f *fakePunchRepo) Delete(_ context.Context, employeeID int, ts time.Time) error {
	kept := f.events[employeeID][:0]
	for _, ev := range f.events[employeeID] {
		if !ev.Timestamp.Equal(ts) {
			kept = append(kept, ev)
		}
	}
	f.events[employeeID] = kept
	return nil
}

func (f *fakePunchRepo) ListByEmployee(_ context.Context, employeeID int) ([]punch.Event, error) {
	return f.events[employeeID], nil
}

func (f *fakePunchRepo) DistinctEmployeeIDs(_ context.Context) ([]int, error) {
	var ids []int
	for id := range f.events {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

type fakeDirectoryRepo struct {
	names map[int]string
}

func (f *fakeDirectoryRepo) UpsertBatch(_ context.Context, entries []directory.Entry) error {
	for _, e := range entries {
		f.names[e.EmployeeID] = e.Name
	}
	return nil
}

func (f *fakeDirectoryRepo) GetName(_ context.Context, employeeID int) (string, error) {
	name, ok := f.names[employeeID]
	if !ok {
		return "", directory.ErrEmployeeNotFound
	}
	return name, nil
}

func (f *fakeDirectoryRepo) List(_ context.Context) ([]directory.Entry, error) {
	var entries []directory.Entry
	for id, name := range f.names {
		entries = append(entries, directory.Entry{EmployeeID: id, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].EmployeeID < entries[j].EmployeeID })
	return entries, nil
}

type fakeDayRepo struct {
	compDates map[int][]string
}

func (f *fakeDayRepo) UpsertDays(context.Context, []attendance.DailyRecord) error { return nil }
func (f *fakeDayRepo) Get(context.Context, int, string) (attendance.DailyRecord, error) {
	return attendance.DailyRecord{}, attendance.ErrDayNotFound
}
func (f *fakeDayRepo) ListRange(context.Context, int, string, string) ([]attendance.DailyRecord, error) {
	return nil, nil
}
func (f *fakeDayRepo) ListCompDates(_ context.Context, employeeID int) ([]string, error) {
	return f.compDates[employeeID], nil
}
func (f *fakeDayRepo) MarkComp(context.Context, int, string) error  { return nil }
func (f *fakeDayRepo) ClearComp(context.Context, int, string) error { return nil }
func (f *fakeDayRepo) DeleteByEmployee(context.Context, int) error  { return nil }

// ===== helpers =====

var testLoc = func() *time.Location {
	loc, err := civiltime.FixedLocation("+05:30")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(employeeID int, date, clock string) punch.Event {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, testLoc)
	if err != nil {
		panic(err)
	}
	return punch.Event{EmployeeID: employeeID, Timestamp: t, VerifyType: 1}
}

func newTestService(punches *fakePunchRepo, names *fakeDirectoryRepo, days *fakeDayRepo) report.ReportService {
	return NewReportService(punches, names, days, attendance.DefaultSettings(), testLoc)
}

// ===== tests =====

func TestMonthlyReport(t *testing.T) {
	punches := &fakePunchRepo{events: map[int][]punch.Event{
		5: {
			at(5, "2025-12-01", "09:00:00"),
			at(5, "2025-12-01", "18:30:00"),
		},
		9: {
			at(9, "2025-12-02", "10:00:00"),
		},
	}}
	names := &fakeDirectoryRepo{names: map[int]string{5: "ALICE KUMAR"}}
	days := &fakeDayRepo{compDates: map[int][]string{}}

	svc := newTestService(punches, names, days)
	result, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: "2025-12"})
	require.NoError(t, err)

	assert.Equal(t, "2025-12", result.Month)
	require.Len(t, result.Users, 2)

	alice := result.Users[0]
	assert.Equal(t, 5, alice.EmployeeID)
	assert.Equal(t, "ALICE KUMAR", alice.Name)
	assert.Len(t, alice.Days, 31)
	assert.Equal(t, 1, alice.Summary.PresentDays)
	assert.Equal(t, 30, alice.Summary.AbsentDays)

	// Employee 9 has no directory entry: name falls back.
	assert.Equal(t, "Employee 9", result.Users[1].Name)
	assert.Equal(t, 1, result.Users[1].Summary.IncompleteDays)
}

func TestMonthlyReport_MonthOutsideSpan(t *testing.T) {
	punches := &fakePunchRepo{events: map[int][]punch.Event{
		5: {at(5, "2025-12-01", "09:00:00")},
	}}
	svc := newTestService(punches, &fakeDirectoryRepo{names: map[int]string{}}, &fakeDayRepo{compDates: map[int][]string{}})

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: "2026-03"})
	assert.ErrorIs(t, err, report.ErrNoDataForMonth)
}

func TestMonthlyReport_InvalidMonth(t *testing.T) {
	svc := newTestService(&fakePunchRepo{events: map[int][]punch.Event{}}, &fakeDirectoryRepo{names: map[int]string{}}, &fakeDayRepo{})

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{Month: "December 2025"})
	assert.Error(t, err)
}

func TestMonthlyReport_SettingsOverride(t *testing.T) {
	punches := &fakePunchRepo{events: map[int][]punch.Event{
		5: {
			at(5, "2025-12-01", "09:40:00"),
			at(5, "2025-12-01", "18:30:00"),
		},
	}}
	svc := newTestService(punches, &fakeDirectoryRepo{names: map[int]string{}}, &fakeDayRepo{compDates: map[int][]string{}})

	// Under default 15-minute grace 09:40 is on time; with zero grace it is late.
	zero := 0
	result, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		Month:    "2025-12",
		Settings: attendance.SettingsOverride{LateThresholdMinutes: &zero},
	})
	require.NoError(t, err)
	assert.True(t, result.Users[0].Days[0].IsLate)
	assert.Equal(t, 0, result.Settings.LateThresholdMinutes)
	assert.Equal(t, attendance.DefaultWorkStart, result.Settings.WorkStart, "unset fields keep defaults")
}

func TestEmployeeMonth_CompOverlay(t *testing.T) {
	punches := &fakePunchRepo{events: map[int][]punch.Event{
		5: {
			at(5, "2025-12-01", "09:00:00"),
			at(5, "2025-12-01", "18:30:00"),
		},
	}}
	days := &fakeDayRepo{compDates: map[int][]string{5: {"2025-12-10"}}}
	svc := newTestService(punches, &fakeDirectoryRepo{names: map[int]string{}}, days)

	user, err := svc.EmployeeMonth(context.Background(), 5, report.MonthlyReportRequest{Month: "2025-12"})
	require.NoError(t, err)

	comp := user.Days[9]
	assert.Equal(t, "2025-12-10", comp.Date)
	assert.Equal(t, attendance.StatusComp, comp.Status)
	assert.Nil(t, comp.FirstIn)
	assert.Zero(t, comp.WorkedMinutes)
	assert.Equal(t, 1, user.Summary.CompDays)
	assert.Equal(t, 30, user.Summary.AbsentDays+user.Summary.PresentDays)
}

func TestEmployeeMonth_NoData(t *testing.T) {
	svc := newTestService(&fakePunchRepo{events: map[int][]punch.Event{}}, &fakeDirectoryRepo{names: map[int]string{}}, &fakeDayRepo{})

	_, err := svc.EmployeeMonth(context.Background(), 42, report.MonthlyReportRequest{Month: "2025-12"})
	assert.ErrorIs(t, err, attendance.ErrNoAttendanceData)
}
