// Package civiltime interprets wall-clock data from biometric devices.
//
// Punch logs carry bare "2006-01-02 15:04:05" strings with no zone marker;
// the device clock runs in the deployment's civil timezone. Everything here
// treats those digits as civil-local in a single fixed offset, never UTC and
// never the process timezone.
package civiltime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/punchlab/punchclock-backend-go/internal/pkg/validator"
)

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04:05"
	MonthLayout = "2006-01"

	// StampLayout parses a device timestamp once the offset suffix has been
	// appended to the raw digits.
	StampLayout = "2006-01-02 15:04:05 -07:00"
)

// FixedLocation builds a time.Location from an offset string such as "+05:30".
func FixedLocation(offset string) (*time.Location, error) {
	if !validator.IsValidUTCOffset(offset) {
		return nil, fmt.Errorf("invalid civil offset %q, want +HH:MM or -HH:MM", offset)
	}

	sign := 1
	if offset[0] == '-' {
		sign = -1
	}
	parts := strings.SplitN(offset[1:], ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	return time.FixedZone("UTC"+offset, sign*(hours*3600+minutes*60)), nil
}

// MinutesOfDay returns the wall-clock minute index of t rendered in loc,
// e.g. 09:45 -> 585.
func MinutesOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ParseClock converts an "HH:MM" string to its minute-of-day index.
func ParseClock(s string) (int, error) {
	if !validator.IsValidClockTime(s) {
		return 0, fmt.Errorf("invalid clock time %q, want HH:MM", s)
	}
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}
