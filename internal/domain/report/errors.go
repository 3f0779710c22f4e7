package report

import "errors"

var (
	ErrNoDataForMonth = errors.New("no attendance data found for the requested month")
)
