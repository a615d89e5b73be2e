package scheduling

import "errors"

var (
	// ErrDateUnavailable is returned when a booking session selects a date
	// outside the window's available set.
	ErrDateUnavailable = errors.New("scheduling: date is not available")

	// ErrNoDateSelected is returned when a session action requires a selected date.
	ErrNoDateSelected = errors.New("scheduling: no date selected")

	// ErrSessionClosed is returned once a session has handed off to the
	// external booking target.
	ErrSessionClosed = errors.New("scheduling: booking already opened")
)
