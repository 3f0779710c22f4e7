package attendance

// Daily status values. These strings are part of the wire contract with the
// report and persistence layers and must not be renamed.
const (
	StatusPresent    = "PRESENT"
	StatusAbsent     = "ABSENT"
	StatusIncomplete = "INCOMPLETE"
	StatusComp       = "COMP"
)

// Inferred punch roles. Roles come from sorted order parity, not from the
// device's in/out flag.
const (
	PunchIn  = "IN"
	PunchOut = "OUT"
)

// PunchView is one swipe as it appears inside a daily record: civil
// time-of-day plus the role and pairing the derivation assigned to it.
type PunchView struct {
	Time              string `json:"time"` // HH:MM:SS
	Type              string `json:"type"` // IN or OUT
	VerificationLabel string `json:"verification"`
	IsPaired          bool   `json:"is_paired"`
}

// DailyRecord is one calendar day for one employee. Days without punches are
// materialized as ABSENT records, never omitted, so a month is always a
// gapless run of records.
type DailyRecord struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD

	FirstIn *string `json:"first_in"` // HH:MM:SS, nil when no punches
	LastOut *string `json:"last_out"` // HH:MM:SS, nil unless 2+ punches

	// WorkedMinutes is the raw paired in/out duration; TotalHours and
	// TotalMinutes are its normalized hours/minutes-of-hour split.
	WorkedMinutes int `json:"worked_minutes"`
	TotalHours    int `json:"total_hours"`
	TotalMinutes  int `json:"total_minutes"`

	PunchCount int         `json:"punch_count"`
	Punches    []PunchView `json:"punches"`

	Status          string `json:"status"`
	IsLate          bool   `json:"is_late"`
	IsEarlyOut      bool   `json:"is_early_out"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}

// NewCompDay builds the record shape a comp-off override always takes:
// times, duration and punches are zeroed regardless of any legacy punch data.
func NewCompDay(employeeID int, date string) DailyRecord {
	return DailyRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     StatusComp,
		Punches:    []PunchView{},
	}
}

// Summary is the per-employee rollup over a contiguous run of daily records.
// It is recomputed in full on every report request, never mutated in place.
type Summary struct {
	EmployeeID int `json:"employee_id"`

	TotalDays      int `json:"total_days"`
	PresentDays    int `json:"present_days"`
	AbsentDays     int `json:"absent_days"`
	IncompleteDays int `json:"incomplete_days"`
	CompDays       int `json:"comp_days"`

	TotalWorkingHours   int     `json:"total_working_hours"`
	TotalWorkingMinutes int     `json:"total_working_minutes"`
	AverageHoursPerDay  float64 `json:"average_hours_per_day"`

	LateDays        int `json:"late_days"`
	EarlyOutDays    int `json:"early_out_days"`
	OvertimeMinutes int `json:"overtime_minutes"`
}
