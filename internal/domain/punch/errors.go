package punch

import "errors"

// Punch domain errors
var (
	// ErrNoValidRecords means an uploaded punch log produced zero usable
	// events. Individual bad lines are skipped silently; a file with nothing
	// usable at all almost always means the wrong file was uploaded.
	ErrNoValidRecords = errors.New("no valid attendance records found in file")

	ErrPunchNotFound      = errors.New("punch record not found")
	ErrPunchAlreadyExists = errors.New("an identical punch already exists")
)
