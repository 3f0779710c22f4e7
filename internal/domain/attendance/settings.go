package attendance

import (
	"github.com/punchlab/punchclock-backend-go/internal/pkg/civiltime"
	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

// Default shift window and grace thresholds, applied field-by-field whenever
// a caller leaves a setting unset.
const (
	DefaultWorkStart                = "09:30"
	DefaultWorkEnd                  = "18:30"
	DefaultLateThresholdMinutes     = 15
	DefaultEarlyOutThresholdMinutes = 15

	// Grace thresholds beyond two hours are almost certainly a typo in the
	// request, so Validate rejects them.
	maxThresholdMinutes = 120
)

// Settings configures one derivation run. Supplied per request; the caller
// merges overrides over DefaultSettings rather than reading ambient state.
type Settings struct {
	WorkStart string `json:"work_start"` // HH:MM
	WorkEnd   string `json:"work_end"`   // HH:MM

	LateThresholdMinutes     int `json:"late_threshold_minutes"`
	EarlyOutThresholdMinutes int `json:"early_out_threshold_minutes"`
}

func DefaultSettings() Settings {
	return Settings{
		WorkStart:                DefaultWorkStart,
		WorkEnd:                  DefaultWorkEnd,
		LateThresholdMinutes:     DefaultLateThresholdMinutes,
		EarlyOutThresholdMinutes: DefaultEarlyOutThresholdMinutes,
	}
}

func (s Settings) Validate() error {
	var errs validator.ValidationErrors

	startMin, startOK := -1, validator.IsValidClockTime(s.WorkStart)
	endMin, endOK := -1, validator.IsValidClockTime(s.WorkEnd)

	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start",
			Message: "work_start must be a valid HH:MM time",
		})
	} else {
		startMin, _ = civiltime.ParseClock(s.WorkStart)
	}

	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end",
			Message: "work_end must be a valid HH:MM time",
		})
	} else {
		endMin, _ = civiltime.ParseClock(s.WorkEnd)
	}

	if startOK && endOK && endMin <= startMin {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end",
			Message: "work_end must be after work_start (night shifts across midnight are not supported)",
		})
	}

	if s.LateThresholdMinutes < 0 || s.LateThresholdMinutes > maxThresholdMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late_threshold_minutes must be between 0 and 120",
		})
	}

	if s.EarlyOutThresholdMinutes < 0 || s.EarlyOutThresholdMinutes > maxThresholdMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "early_out_threshold_minutes",
			Message: "early_out_threshold_minutes must be between 0 and 120",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkStartMinutes returns the shift start as a minute-of-day index.
// Settings must have passed Validate first.
func (s Settings) WorkStartMinutes() int {
	m, _ := civiltime.ParseClock(s.WorkStart)
	return m
}

// WorkEndMinutes returns the shift end as a minute-of-day index.
func (s Settings) WorkEndMinutes() int {
	m, _ := civiltime.ParseClock(s.WorkEnd)
	return m
}

// ShiftMinutes is the nominal shift length; overtime is measured against it.
func (s Settings) ShiftMinutes() int {
	return s.WorkEndMinutes() - s.WorkStartMinutes()
}

// SettingsOverride is a partial Settings as received from query parameters or
// a request body. Unset fields keep the base value, so a zero threshold
// override is distinguishable from "not supplied".
type SettingsOverride struct {
	WorkStart                *string `json:"work_start,omitempty"`
	WorkEnd                  *string `json:"work_end,omitempty"`
	LateThresholdMinutes     *int    `json:"late_threshold_minutes,omitempty"`
	EarlyOutThresholdMinutes *int    `json:"early_out_threshold_minutes,omitempty"`
}

// Apply merges the override onto base field-by-field and returns the result.
func (o SettingsOverride) Apply(base Settings) Settings {
	merged := base
	if o.WorkStart != nil {
		merged.WorkStart = *o.WorkStart
	}
	if o.WorkEnd != nil {
		merged.WorkEnd = *o.WorkEnd
	}
	if o.LateThresholdMinutes != nil {
		merged.LateThresholdMinutes = *o.LateThresholdMinutes
	}
	if o.EarlyOutThresholdMinutes != nil {
		merged.EarlyOutThresholdMinutes = *o.EarlyOutThresholdMinutes
	}
	return merged
}
