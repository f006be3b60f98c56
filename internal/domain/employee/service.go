package employee

import "context"

// EmployeeService is the actor directory: it links authenticated users to employees
// and guards office configuration.
type EmployeeService interface {
	// ResolveActor returns the employee linked to userID.
	ResolveActor(ctx context.Context, userID string) (Employee, error)

	// GetProfile returns the actor's profile and this week's attendance summary.
	GetProfile(ctx context.Context, actor Employee) (ProfileResponse, error)

	// UpdateOfficeLocation changes office coordinates and radius. Only callers whose role
	// holds user.PermissionOfficeManage may do this; others get ErrAccessDenied.
	UpdateOfficeLocation(ctx context.Context, caller Caller, employeeID string, req UpdateOfficeRequest) (EmployeeResponse, error)
}
