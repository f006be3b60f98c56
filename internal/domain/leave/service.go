package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type LeaveService interface {
	ListMyLeaves(ctx context.Context, actor employee.Employee, filter LeaveFilter) (ListLeaveResponse, error)
	ListLeaveTypes(ctx context.Context, actor employee.Employee) ([]LeaveTypeResponse, error)
	CreateLeave(ctx context.Context, actor employee.Employee, req CreateLeaveRequest) (LeaveRequestResponse, error)
}
