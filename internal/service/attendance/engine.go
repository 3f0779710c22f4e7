package attendance

import (
	"sort"
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/domain/attendance"
	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
)

// ComputeCalendar derives the gap-filled attendance calendar for one employee
// from their full punch set.
//
// The output covers every calendar day from the first day of the month of the
// earliest punch through the last day of the month of the latest punch, so a
// caller filtering "show me November" always gets a complete November even if
// punches exist for only three days of it. Days without punches materialize
// as ABSENT records.
//
// The function is pure: same punches, settings and location always produce
// identical output, which is what lets the persistence layer recompute an
// employee-day instead of patching it incrementally. It never fails for any
// finite punch set; with zero events it returns nil and the "no data" error
// belongs to the ingestion boundary.
func ComputeCalendar(employeeID int, events []punch.Event, settings attendance.Settings, loc *time.Location) []attendance.DailyRecord {
	if len(events) == 0 {
		return nil
	}

	byDay := make(map[string][]punch.Event)
	var minDay, maxDay time.Time
	for _, ev := range events {
		local := ev.Timestamp.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		key := day.Format(civiltime.DateLayout)
		byDay[key] = append(byDay[key], ev)

		if minDay.IsZero() || day.Before(minDay) {
			minDay = day
		}
		if maxDay.IsZero() || day.After(maxDay) {
			maxDay = day
		}
	}

	start := time.Date(minDay.Year(), minDay.Month(), 1, 0, 0, 0, 0, loc)
	end := time.Date(maxDay.Year(), maxDay.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1)

	var days []attendance.DailyRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(civiltime.DateLayout)
		days = append(days, buildDay(employeeID, key, byDay[key], settings, loc))
	}

	return days
}

// buildDay derives one daily record from that day's punches.
func buildDay(employeeID int, date string, events []punch.Event, settings attendance.Settings, loc *time.Location) attendance.DailyRecord {
	record := attendance.DailyRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusAbsent,
		Punches:    []attendance.PunchView{},
	}

	n := len(events)
	if n == 0 {
		return record
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	// Roles alternate by sorted position: even index IN, odd index OUT. Only
	// the very last punch of an odd-count day is ever unpaired.
	for i, ev := range events {
		view := attendance.PunchView{
			Time:              ev.Timestamp.In(loc).Format(civiltime.TimeLayout),
			VerificationLabel: punch.VerificationLabel(ev.VerifyType),
		}
		if i%2 == 0 {
			view.Type = attendance.PunchIn
			view.IsPaired = i+1 < n
		} else {
			view.Type = attendance.PunchOut
			view.IsPaired = true
		}
		record.Punches = append(record.Punches, view)
	}
	record.PunchCount = n

	// Each consecutive (in, out) pair contributes its positive gap. An
	// unpaired trailing punch contributes nothing: there is no out to close
	// the segment.
	worked := 0
	for i := 0; i+1 < n; i += 2 {
		gap := int(events[i+1].Timestamp.Sub(events[i].Timestamp).Minutes())
		if gap > 0 {
			worked += gap
		}
	}
	record.WorkedMinutes = worked
	record.TotalHours = worked / 60
	record.TotalMinutes = worked % 60

	if n%2 == 0 {
		record.Status = attendance.StatusPresent
	} else {
		record.Status = attendance.StatusIncomplete
	}

	firstIn := record.Punches[0].Time
	record.FirstIn = &firstIn
	if n > 1 {
		lastOut := record.Punches[n-1].Time
		record.LastOut = &lastOut
	}

	// Lateness, early departure and overtime are only meaningful for a
	// complete (PRESENT) day.
	if record.Status == attendance.StatusPresent {
		firstInMin := civiltime.MinutesOfDay(events[0].Timestamp, loc)
		lastOutMin := civiltime.MinutesOfDay(events[n-1].Timestamp, loc)

		record.IsLate = firstInMin > settings.WorkStartMinutes()+settings.LateThresholdMinutes
		record.IsEarlyOut = lastOutMin < settings.WorkEndMinutes()-settings.EarlyOutThresholdMinutes

		if overtime := worked - settings.ShiftMinutes(); overtime > 0 {
			record.OvertimeMinutes = overtime
		}
	}

	return record
}
