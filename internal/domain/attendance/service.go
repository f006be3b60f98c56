package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

// AttendanceService defines business logic for attendance operations. The actor is
// always passed explicitly and must already be resolved from the authenticated user.
type AttendanceService interface {
	// Apply validates the actor's position against the office geofence and performs
	// one work/break transition as a single atomic unit.
	Apply(ctx context.Context, actor employee.Employee, req CheckRequest) (CheckResponse, error)

	// GetTodayLog summarizes today's sessions for the actor.
	GetTodayLog(ctx context.Context, actor employee.Employee) (TodayLogResponse, error)

	// GetStatus reports the actor's current state and the actions allowed from it.
	GetStatus(ctx context.Context, actor employee.Employee) (StatusResponse, error)

	// GetMyAttendance lists the actor's sessions with pagination.
	GetMyAttendance(ctx context.Context, actor employee.Employee, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
