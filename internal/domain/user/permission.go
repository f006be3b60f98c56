package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionLeaveCreate       Permission = "leave.create"
	PermissionPayslipViewOwn    Permission = "payslip.view_own"
	PermissionExpenseCreate     Permission = "expense.create"

	// Office configuration: office_latitude, office_longitude, allowed_radius_m
	PermissionOfficeManage Permission = "employee.manage_office"

	// Payroll officers
	PermissionPayslipViewAll Permission = "payslip.view_all"
)

var selfService = []Permission{
	PermissionViewOwnProfile,
	PermissionAttendanceCreate,
	PermissionAttendanceViewOwn,
	PermissionLeaveCreate,
	PermissionPayslipViewOwn,
	PermissionExpenseCreate,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner:    append(append([]Permission{}, selfService...), PermissionOfficeManage, PermissionPayslipViewAll),
	RoleManager:  append(append([]Permission{}, selfService...), PermissionOfficeManage, PermissionPayslipViewAll),
	RoleEmployee: selfService,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
