package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance sessions.
// Writes must run inside the transaction carried by ctx when one is present.
type AttendanceRepository interface {
	// FindOpenSession returns the open session of the given kind, or nil when there is none.
	FindOpenSession(ctx context.Context, employeeID string, isBreak bool) (*Attendance, error)

	// Create inserts a new open session. A second open session of the same kind
	// yields ErrConcurrencyConflict.
	Create(ctx context.Context, session Attendance) (Attendance, error)

	// Close fills check_out and the out coordinates of an open session exactly once.
	// Closing an already closed session yields ErrConcurrencyConflict.
	Close(ctx context.Context, id string, checkOut time.Time, latitude, longitude float64) error

	// ListBetween returns sessions whose check_in falls in [from, to), oldest first.
	ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// GetMyAttendance returns a page of sessions for an employee.
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}
