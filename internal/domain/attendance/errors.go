package attendance

import "errors"

// Attendance domain errors
var (
	// Comp-off transition errors
	ErrCompRequiresAbsent = errors.New("comp-off can only be granted on an absent day")
	ErrDayNotComp         = errors.New("day is not marked as comp-off")

	// General errors
	ErrDayNotFound      = errors.New("attendance day not found")
	ErrNoAttendanceData = errors.New("no attendance data for employee")
)
