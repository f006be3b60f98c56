package payroll

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
)

type PayrollService interface {
	ListMyPayslips(ctx context.Context, actor employee.Employee, filter PayslipFilter) (ListPayslipResponse, error)
	// GetPayslip returns a payslip owned by the actor, or any payslip of the actor's
	// company when role holds user.PermissionPayslipViewAll.
	GetPayslip(ctx context.Context, actor employee.Employee, role user.Role, id string) (PayslipDetailResponse, error)
	GetDashboard(ctx context.Context, actor employee.Employee) (PayslipDashboardResponse, error)
}
