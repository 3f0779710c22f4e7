package directory

import "errors"

// Directory domain errors
var (
	// ErrNoValidRecords means the binary blob yielded zero name records.
	// Single unreadable records are skipped; an entirely empty result means
	// the wrong file was supplied.
	ErrNoValidRecords = errors.New("no valid user records found in directory file")

	ErrEmployeeNotFound = errors.New("employee not found in directory")
)
