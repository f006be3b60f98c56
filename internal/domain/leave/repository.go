package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	// ListAvailable returns active types that either need no allocation or have an
	// approved allocation for the employee.
	ListAvailable(ctx context.Context, employeeID string, companyID string) ([]LeaveType, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetMyRequests(ctx context.Context, employeeID string, filter LeaveFilter) ([]LeaveRequest, int64, StatusCounts, error)
	// HasOverlap reports whether a non-cancelled, non-rejected request intersects [from, to].
	HasOverlap(ctx context.Context, employeeID string, from, to time.Time) (bool, error)
	// ListApprovedBetween returns approved requests intersecting [from, to].
	ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}
