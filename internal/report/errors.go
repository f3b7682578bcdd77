package report

import "errors"

var (
	// ErrInvalidWindow is returned for trailing windows shorter than one day.
	ErrInvalidWindow = errors.New("trailing window must cover at least one day")

	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("start date is after end date")
)
