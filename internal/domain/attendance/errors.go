package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Request errors
	ErrInvalidAction       = errors.New("invalid action, use check_in, check_out, break_in or break_out")
	ErrMissingLocation     = errors.New("latitude and longitude are required")
	ErrOfficeNotConfigured = errors.New("office location is not configured for this employee")
	ErrOutOfRange          = errors.New("you are outside the allowed radius")

	// Sequencing errors
	ErrAlreadyCheckedIn    = errors.New("already checked in, please check out first")
	ErrNoActiveWorkSession = errors.New("no open check-in found to check out from")
	ErrBreakStillOpen      = errors.New("a break is still open, please end the break first")
	ErrNotCheckedIn        = errors.New("you have not checked in yet")
	ErrAlreadyOnBreak      = errors.New("already on break")
	ErrNoActiveBreak       = errors.New("no active break to end")
	ErrConcurrencyConflict = errors.New("attendance was modified concurrently, please retry")
)

// OutOfRangeError carries the measured distance and the radius it was checked against.
type OutOfRangeError struct {
	DistanceM      float64
	AllowedRadiusM int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %.1fm away, allowed %dm", ErrOutOfRange.Error(), e.DistanceM, e.AllowedRadiusM)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
